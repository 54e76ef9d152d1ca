package effect

// Kind names a looping effect. At most one timeline per element and kind is
// registered at a time.
type Kind string

const (
	KindPulse     Kind = "pulse"
	KindJumpCall  Kind = "jump-call"
	KindSpinCall  Kind = "spin-call"
	KindSwipeCall Kind = "swipe-call"
	KindShake     Kind = "shake"
)

// Kinds lists the looping effects of the catalog.
func Kinds() []Kind {
	return []Kind{KindPulse, KindJumpCall, KindSpinCall, KindSwipeCall, KindShake}
}

func (k Kind) String() string {
	return string(k)
}
