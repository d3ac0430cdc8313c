package analysis

import (
	"github.com/Kyozuro111/ROMA-Memetrace/internal/domain"
	"github.com/Kyozuro111/ROMA-Memetrace/internal/provider"
)

const zeroAddress = "0x0000000000000000000000000000000000000000"

// ScoreSecurity turns raw GoPlus contract flags into a scored record.
// The score starts at 100 and loses fixed amounts per flag, flooring
// at 0; each deduction appends its description.
func ScoreSecurity(report *provider.SecurityReport) *domain.ContractSecurity {
	hasHiddenFees := report.HiddenOwner || report.IsProxy
	canMint := report.CanTakeBackOwnership || report.OwnerChangeBalance
	ownershipRenounced := report.OwnerAddress == zeroAddress

	var risks []string
	score := 100

	if report.IsHoneypot {
		risks = append(risks, "CRITICAL: Honeypot detected - cannot sell")
		score -= 50
	}
	if hasHiddenFees {
		risks = append(risks, "Hidden owner or proxy contract detected")
		score -= 20
	}
	if canMint {
		risks = append(risks, "Owner can mint new tokens")
		score -= 15
	}
	if !ownershipRenounced && report.OwnerAddress != "" {
		risks = append(risks, "Ownership not renounced")
		score -= 10
	}
	if !report.OpenSource {
		risks = append(risks, "Contract not verified")
		score -= 15
	}

	if score < 0 {
		score = 0
	}

	return &domain.ContractSecurity{
		IsHoneypot:         report.IsHoneypot,
		HasHiddenFees:      hasHiddenFees,
		CanMint:            canMint,
		CanBurn:            report.SelfDestruct,
		OwnershipRenounced: ownershipRenounced,
		SecurityScore:      score,
		Risks:              risks,
	}
}

// FallbackSecurity is the conservative record used when the scan
// provider is unreachable or has no data for the contract.
func FallbackSecurity() *domain.ContractSecurity {
	return &domain.ContractSecurity{
		SecurityScore: 65,
		Risks:         []string{"Unable to verify contract security - proceed with caution"},
	}
}
