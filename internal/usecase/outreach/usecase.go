// Package outreach runs the overdue-loan reminder job: every Active loan
// past its due date gets a reminder over the channel the decision rules
// recommend for its current risk. Actual delivery is an external concern;
// here it is a log line plus a persisted reminder row.
package outreach

import (
	"context"
	"fmt"
	"log"
	"time"

	"intellidebt-backend/internal/decision"
	"intellidebt-backend/internal/domain/client"
	"intellidebt-backend/internal/domain/loan"
)

type Usecase struct {
	loans     loan.Repository
	clients   client.Repository
	reminders loan.ReminderRepository
}

func NewUsecase(loans loan.Repository, clients client.Repository, reminders loan.ReminderRepository) *Usecase {
	return &Usecase{loans: loans, clients: clients, reminders: reminders}
}

// Run dispatches reminders for all overdue loans and returns how many were
// sent. Individual failures are logged and skipped so one bad row does not
// stall the batch.
func (u *Usecase) Run(ctx context.Context, now time.Time) (int, error) {
	overdue, err := u.loans.ListOverdue(ctx, now)
	if err != nil {
		return 0, err
	}

	count := 0
	for i := range overdue {
		l := &overdue[i]
		c, err := u.clients.GetByID(ctx, l.ClientID)
		if err != nil {
			log.Printf("outreach: skip loan %s: client lookup: %v", l.LoanID, err)
			continue
		}

		ch := decision.RecommendChannel(l.PredictedDefaultRisk, l.DaysPastDue, l.OutstandingAmount)
		msg := fmt.Sprintf(
			"URGENT: Dear %s, your loan payment of $%.2f was due on %s. Please pay immediately.",
			c.Name, l.OutstandingAmount, l.DueDate.Format("2006-01-02"),
		)

		r := &loan.Reminder{
			LoanID:  l.ID,
			Message: msg,
			Method:  reminderMethod(ch),
		}
		if err := u.reminders.Create(ctx, r); err != nil {
			log.Printf("outreach: skip loan %s: save reminder: %v", l.LoanID, err)
			continue
		}
		log.Printf("[SENDING %s] to=%s loan=%s", r.Method, c.Contact, l.LoanID)
		count++
	}
	return count, nil
}

// reminderMethod maps a recommended channel onto a deliverable medium.
func reminderMethod(ch decision.Channel) string {
	switch ch.Method {
	case "Immediate Legal Action":
		return "Legal"
	case "Settlement Offers":
		return "Call"
	default:
		return "SMS"
	}
}
