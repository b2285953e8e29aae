package domain

// Capability is an action gated by the entitlement rules.
type Capability string

const (
	CapabilityGuide   Capability = "generate_guide"
	CapabilityMvpPlan Capability = "generate_mvp_plan"
)

// Evaluate decides whether the account may exercise the capability.
// It returns nil on allow, or one of ErrNeedsIdentity,
// ErrUpgradeRequired, ErrProOnly on deny. Pure: the account is never
// mutated here; the guide counter is incremented by the caller after a
// successful generation.
func Evaluate(account *Account, capability Capability) error {
	if account == nil {
		return ErrNeedsIdentity
	}

	switch capability {
	case CapabilityGuide:
		if account.IsPaid {
			return nil
		}
		if account.GuidesUsed < FreeGuideLimit {
			return nil
		}
		return ErrUpgradeRequired
	case CapabilityMvpPlan:
		if account.IsPaid {
			return nil
		}
		return ErrProOnly
	default:
		return ErrUnknownCapability
	}
}
