// Package reporting holds the end-of-run output of a reconciliation.
package reporting

// BadResultLog maps the names of tests whose result could not be submitted to the reason why. Names are kept in the
// order they were first recorded.
type BadResultLog struct {
	names    []string
	messages map[string]string
}

// Record stores the message for `name`, replacing any previous message for the same name.
func (l *BadResultLog) Record(name, message string) {
	if l.messages == nil {
		l.messages = make(map[string]string)
	}

	if _, ok := l.messages[name]; !ok {
		l.names = append(l.names, name)
	}

	l.messages[name] = message
}

// Len returns the number of recorded tests
func (l BadResultLog) Len() int {
	return len(l.names)
}

// Message returns the message recorded for `name`
func (l BadResultLog) Message(name string) (string, bool) {
	message, ok := l.messages[name]
	return message, ok
}

// Names returns the recorded test names in recording order
func (l BadResultLog) Names() []string {
	return append([]string(nil), l.names...)
}
