package livelist

import (
	"fmt"

	"github.com/golang/glog"
)

// ProtocolError is the panic value raised when an event stream breaks the
// rules of the list protocol.
type ProtocolError struct {
	Operator string
	ID       ID
	Reason   string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("livelist: %s: %s (id %s)", e.Operator, e.Reason, e.ID)
}

func protocolErrorf(operator string, id ID, format string, args ...any) *ProtocolError {
	err := &ProtocolError{
		Operator: operator,
		ID:       id,
		Reason:   fmt.Sprintf(format, args...),
	}
	glog.ErrorDepth(1, err.Error())
	return err
}
