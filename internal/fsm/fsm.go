package fsm

import "fmt"

type State string

type Event string

const (
	StateIdle            State = "idle"
	StateAwaitingConsent State = "awaiting_consent"
	StateListening       State = "listening"
	StateResultsPending  State = "results_pending"
	StateHighlighted     State = "highlighted"
	StateCommitted       State = "committed"
	StateReverted        State = "reverted"
)

const (
	EventConsentRequired Event = "consent_required"
	EventBegin           Event = "begin"
	EventConsentDenied   Event = "consent_denied"
	EventResults         Event = "results"
	EventHighlight       Event = "highlight"
	EventDiscard         Event = "discard"
	EventCancel          Event = "cancel"
	EventCommit          Event = "commit"
	EventRevert          Event = "revert"
	EventSubstitute      Event = "substitute"
	EventEnd             Event = "end"
)

func Transition(current State, event Event) (State, error) {
	switch current {
	case StateIdle:
		switch event {
		case EventConsentRequired:
			return StateAwaitingConsent, nil
		case EventBegin:
			return StateListening, nil
		default:
			return current, invalidTransition(current, event)
		}
	case StateAwaitingConsent:
		switch event {
		case EventBegin:
			return StateListening, nil
		case EventConsentDenied:
			return StateIdle, nil
		default:
			return current, invalidTransition(current, event)
		}
	case StateListening:
		switch event {
		case EventResults:
			return StateResultsPending, nil
		case EventCancel:
			return StateIdle, nil
		default:
			return current, invalidTransition(current, event)
		}
	case StateResultsPending:
		switch event {
		case EventHighlight:
			return StateHighlighted, nil
		case EventDiscard:
			return StateIdle, nil
		default:
			return current, invalidTransition(current, event)
		}
	case StateHighlighted:
		switch event {
		case EventCommit:
			return StateCommitted, nil
		case EventRevert:
			return StateReverted, nil
		case EventSubstitute:
			return StateHighlighted, nil
		case EventEnd:
			return StateIdle, nil
		default:
			return current, invalidTransition(current, event)
		}
	case StateCommitted:
		switch event {
		case EventEnd:
			return StateIdle, nil
		default:
			return current, invalidTransition(current, event)
		}
	case StateReverted:
		switch event {
		case EventEnd:
			return StateIdle, nil
		default:
			return current, invalidTransition(current, event)
		}
	default:
		return current, fmt.Errorf("unknown state %q", current)
	}
}

func invalidTransition(state State, event Event) error {
	return fmt.Errorf("invalid transition: %s --(%s)--> ?", state, event)
}
