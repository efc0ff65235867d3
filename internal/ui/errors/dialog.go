package errors

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/snooze/internal/domain"
	apperrors "github.com/shhac/snooze/internal/errors"
)

// ShowError displays a simple error dialog with the error message.
func ShowError(err error, window fyne.Window) {
	if err == nil {
		return
	}

	dialog.ShowError(err, window)
}

// ShowFailure displays a rich dialog for a failed request with recovery
// suggestions and the raw error text as technical details. The onRetry
// function is called when the user clicks Retry (if non-nil).
func ShowFailure(failure *domain.Failure, details string, window fyne.Window, onRetry func()) {
	if failure == nil {
		return
	}

	d := newFailureDialog(failure, details, window, onRetry)
	d.Resize(fyne.NewSize(500, 400))
	d.Show()
}

// ShowClassifiedError classifies err and shows it like a request failure.
func ShowClassifiedError(err error, window fyne.Window) {
	uiErr := apperrors.ClassifyError(err)
	if uiErr == nil {
		return
	}
	ShowFailure(uiErr.Failure(), err.Error(), window, nil)
}

func newFailureDialog(failure *domain.Failure, details string, window fyne.Window, onRetry func()) dialog.Dialog {
	content := failureContent(failure, details)

	if onRetry != nil {
		return dialog.NewCustomConfirm(
			failure.Title,
			"Retry",
			"Close",
			content,
			func(retry bool) {
				if retry {
					onRetry()
				}
			},
			window,
		)
	}
	return dialog.NewCustom(failure.Title, "Close", content, window)
}

// failureContent builds the dialog body with word-wrapping labels to
// prevent horizontal expansion.
func failureContent(failure *domain.Failure, details string) *fyne.Container {
	msgLabel := widget.NewLabel(failure.Message)
	msgLabel.Wrapping = fyne.TextWrapWord
	content := container.NewVBox(msgLabel)

	if len(failure.Recovery) > 0 {
		content.Add(widget.NewSeparator())
		content.Add(widget.NewLabel("You can:"))
		for _, suggestion := range failure.Recovery {
			lbl := widget.NewLabel("• " + suggestion)
			lbl.Wrapping = fyne.TextWrapWord
			content.Add(lbl)
		}
	}

	if details != "" {
		detailsLabel := widget.NewLabel(details)
		detailsLabel.Wrapping = fyne.TextWrapWord
		detailsLabel.TextStyle = fyne.TextStyle{Monospace: true}
		content.Add(widget.NewAccordion(
			widget.NewAccordionItem("Technical Details", detailsLabel),
		))
	}
	return content
}
