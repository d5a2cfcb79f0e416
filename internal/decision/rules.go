// Package decision maps a risk probability and ledger state to a collection
// strategy, channel recommendation, and settlement discount. Fixed business
// policy, not learned: every function here is pure and total.
package decision

// Tier boundaries. 0.75 itself is medium (high is strictly greater); 0.50
// itself is medium (low is strictly lower).
const (
	highRiskAbove  = 0.75
	mediumRiskFrom = 0.50
)

const (
	StrategyLegal    = "Immediate legal notices & aggressive recovery"
	StrategySettle   = "Settlement offers & repayment plans"
	StrategyReminder = "Automated reminders & monitoring"
)

// Channel is the recommended collection channel, shaped for the UI
// collaborator (icon/color are bootstrap hints, passed through untouched).
type Channel struct {
	Method string `json:"method"`
	Icon   string `json:"icon"`
	Color  string `json:"color"`
	Action string `json:"action"`
}

// StrategyFor returns the recovery strategy text for a risk probability.
func StrategyFor(risk float64) string {
	switch {
	case risk > highRiskAbove:
		return StrategyLegal
	case risk >= mediumRiskFrom:
		return StrategySettle
	default:
		return StrategyReminder
	}
}

// RecommendChannel picks the collection channel. A closed loan
// short-circuits to a terminal no-action result regardless of probability.
// daysPastDue is part of the contract for future policy tuning; the current
// policy keys on risk alone.
func RecommendChannel(risk float64, daysPastDue int, outstanding float64) Channel {
	_ = daysPastDue
	if outstanding <= 0 {
		return Channel{
			Method: "Loan Closed",
			Icon:   "bi-check-circle-fill",
			Color:  "success",
			Action: "No further action required. Good job!",
		}
	}
	switch {
	case risk > highRiskAbove:
		return Channel{
			Method: "Immediate Legal Action",
			Icon:   "bi-hammer",
			Color:  "danger",
			Action: "Prepare Legal Notice",
		}
	case risk >= mediumRiskFrom:
		return Channel{
			Method: "Settlement Offers",
			Icon:   "bi-hand-thumbs-up-fill",
			Color:  "warning",
			Action: "Propose Repayment Plan",
		}
	default:
		return Channel{
			Method: "Automated Reminders",
			Icon:   "bi-chat-dots-fill",
			Color:  "success",
			Action: "Send Standard Reminder",
		}
	}
}

// Discount returns the settlement discount policy for a risk probability.
// ok is false when risk is too low to warrant any discount; that is an
// informational outcome, not an error.
func Discount(risk float64) (percent int, reason string, ok bool) {
	switch {
	case risk > highRiskAbove:
		return 30, "High risk of total default. Aggressive offer generated.", true
	case risk >= mediumRiskFrom:
		return 15, "Moderate risk. Incentive provided for immediate payment.", true
	default:
		return 0, "Customer risk is low. No settlement recommended.", false
	}
}

// Settlement is a discounted payoff proposal.
type Settlement struct {
	DiscountPercent  int     `json:"discount_percent"`
	DiscountAmount   float64 `json:"discount_amount"`
	SettlementAmount float64 `json:"settlement_amount"`
	Reason           string  `json:"reason"`
	Recommended      bool    `json:"recommended"`
}

// SettlementFor computes the settlement proposal against the current
// outstanding balance.
func SettlementFor(risk float64, outstanding float64) Settlement {
	percent, reason, ok := Discount(risk)
	if !ok {
		return Settlement{Reason: reason, SettlementAmount: outstanding}
	}
	discount := outstanding * float64(percent) / 100
	return Settlement{
		DiscountPercent:  percent,
		DiscountAmount:   discount,
		SettlementAmount: outstanding - discount,
		Reason:           reason,
		Recommended:      true,
	}
}
