package zulu

// MeridianError reports a token that is none of the four recognized
// AM/PM literals.
type MeridianError struct {
	Token string
}

func (e *MeridianError) Error() string {
	return "unknown am/pm marker: " + e.Token
}

// TimeParseError reports a malformed time token. An empty Field means
// the token had more than two ':'-separated parts; otherwise Field names
// the part that was missing or failed integer parsing, with the raw text
// kept in Token.
type TimeParseError struct {
	Field   string
	Token   string
	Missing bool
	Err     error
}

func (e *TimeParseError) Error() string {
	switch {
	case e.Field == "":
		return "bad time format"
	case e.Missing:
		return "missing " + e.Field
	default:
		return "unable to parse " + e.Field + ": " + e.Err.Error()
	}
}

func (e *TimeParseError) Unwrap() error { return e.Err }
