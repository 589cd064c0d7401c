// Package auth models the mocked login/signup/OTP flow as an explicit state
// machine. Nothing is ever validated for real: any non-empty login submission
// succeeds, the OTP "send" delivers nothing, and verification accepts any
// digits. The machine exists so the view layer renders each stage as a
// tagged variant instead of comparing free-form strings.
package auth

// Stage is one state of the flow.
type Stage string

const (
	StageLogin  Stage = "login"
	StageSignup Stage = "signup"
	StageOTP    Stage = "otp"
)

// OTPDigits is the length of the mocked one-time passcode.
const OTPDigits = 4

// Flow is the auth state machine. The zero value is not usable; construct
// with New.
type Flow struct {
	stage   Stage
	contact string
	otp     [OTPDigits]rune
	done    bool
}

// New creates a Flow starting at the given stage. Anything other than
// StageSignup (including an empty mode hint) starts at login.
func New(initial Stage) *Flow {
	stage := StageLogin
	if initial == StageSignup {
		stage = StageSignup
	}
	return &Flow{stage: stage}
}

// Stage returns the current stage.
func (f *Flow) Stage() Stage {
	return f.stage
}

// Done reports whether the flow has completed. A completed flow retains no
// state worth reading; callers should leave the flow entirely.
func (f *Flow) Done() bool {
	return f.done
}

// Contact returns the entered email-or-phone value.
func (f *Flow) Contact() string {
	return f.contact
}

// SetContact records the contact field as the user types it.
func (f *Flow) SetContact(v string) {
	f.contact = v
}

// ToggleMode switches between login and signup. It is only available before
// submission, i.e. while not at the OTP stage and not done.
func (f *Flow) ToggleMode() {
	if f.done || f.stage == StageOTP {
		return
	}
	if f.stage == StageLogin {
		f.stage = StageSignup
	} else {
		f.stage = StageLogin
	}
}

// Submit advances from login or signup. A login submit completes the flow
// immediately (no credential check); a signup submit "sends" the mocked OTP
// and moves to the OTP stage. Submitting at the OTP stage does nothing —
// that stage advances through Verify.
func (f *Flow) Submit() {
	if f.done {
		return
	}
	switch f.stage {
	case StageLogin:
		f.done = true
	case StageSignup:
		f.stage = StageOTP
	}
}

// SetDigit stores a single OTP digit at position i. Non-numeral runes are
// discarded silently; out-of-range positions are ignored.
func (f *Flow) SetDigit(i int, r rune) bool {
	if f.stage != StageOTP || i < 0 || i >= OTPDigits {
		return false
	}
	if r < '0' || r > '9' {
		return false
	}
	f.otp[i] = r
	return true
}

// ClearDigit erases the digit at position i.
func (f *Flow) ClearDigit(i int) {
	if i >= 0 && i < OTPDigits {
		f.otp[i] = 0
	}
}

// Digit returns the digit at position i, or 0 when empty.
func (f *Flow) Digit(i int) rune {
	if i < 0 || i >= OTPDigits {
		return 0
	}
	return f.otp[i]
}

// Verify completes the flow from the OTP stage. The code is never checked;
// even an incomplete entry succeeds.
func (f *Flow) Verify() {
	if f.stage != StageOTP || f.done {
		return
	}
	f.done = true
}
