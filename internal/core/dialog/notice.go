// Package dialog implements the create/edit/delete interaction pattern shared
// by every admin resource screen: dialog state, duplicate-submit guarding and
// the notice shown after a submission.
package dialog

import "github.com/pdam/billing-console/internal/core/domain"

// Level is the severity of a notice shown to the user.
type Level string

const (
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// UnexpectedMessage is shown for transport and decode failures.
const UnexpectedMessage = "An unexpected error occurred"

// Messages holds the fallback texts used when the API sends no message.
type Messages struct {
	Success string
	Failure string
}

// Notice is a non-blocking toast.
type Notice struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// SuccessNotice returns the notice for a successful submission.
func SuccessNotice(serverMsg string, m Messages) Notice {
	return Notice{Level: LevelSuccess, Message: firstNonEmpty(serverMsg, m.Success)}
}

// FailureNotice classifies err: transport failures get the generic error
// notice, any other API failure a warning with the server message.
func FailureNotice(err error, m Messages) Notice {
	ae, ok := domain.AsAPIError(err)
	if !ok || ae.Kind == domain.KindTransport {
		return Notice{Level: LevelError, Message: UnexpectedMessage}
	}
	return Notice{Level: LevelWarning, Message: firstNonEmpty(ae.Message, m.Failure)}
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
