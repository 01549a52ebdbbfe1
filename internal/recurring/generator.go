// Package recurring turns due recurring invoice templates into draft
// invoices and advances each template's next run date.
package recurring

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dukerupert/tradeline/internal/domain"
	"github.com/dukerupert/tradeline/internal/repository"
	"github.com/dukerupert/tradeline/internal/telemetry"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// errTemplateMoved means another run advanced or disabled the template
// between our read and our update.
var errTemplateMoved = errors.New("recurring template changed concurrently")

// Result summarises one generator run.
type Result struct {
	Generated int `json:"generated"`
	Disabled  int `json:"disabled"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

type outcome int

const (
	outcomeAdvanced outcome = iota
	outcomeDisabled
)

// Generator clones due templates. It is safe to run concurrently with
// itself: each template update is guarded by the next date that was read,
// and the losing run rolls back its invoice.
type Generator struct {
	store  repository.Store
	logger *slog.Logger

	// newShareToken is replaceable in tests.
	newShareToken func() string
}

func NewGenerator(store repository.Store, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		store:         store,
		logger:        logger,
		newShareToken: defaultShareToken,
	}
}

func defaultShareToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Run generates one invoice for every template whose next date is on or
// before today. A template that fails is logged and left unadvanced so the
// next run retries it; the batch always continues. The returned error is
// non-nil only when the due templates could not be listed.
func (g *Generator) Run(ctx context.Context, today time.Time) (Result, error) {
	var result Result

	templates, err := g.store.ListDueRecurringTemplates(ctx, repository.Date(today))
	if err != nil {
		return result, domain.Internal(err, "recurring.Run", "failed to list due recurring templates")
	}

	for _, tmpl := range templates {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		templateID := repository.UUIDFromPg(tmpl.ID)
		logger := g.logger.With("template_id", templateID, "user_id", repository.UUIDFromPg(tmpl.UserID))

		invoice, out, err := g.generate(ctx, tmpl)
		switch {
		case errors.Is(err, errTemplateMoved):
			result.Skipped++
			telemetry.Business.RecordRecurring("skipped")
			logger.Info("recurring template already processed, skipping")
		case err != nil:
			result.Failed++
			telemetry.Business.RecordRecurring("failed")
			logger.Error("failed to generate recurring invoice", "error", err)
			telemetry.CaptureError(err, map[string]interface{}{
				"template_id": templateID.String(),
			})
		default:
			result.Generated++
			telemetry.Business.RecordRecurring("generated")
			if out == outcomeDisabled {
				result.Disabled++
				telemetry.Business.RecordRecurring("disabled")
			}
			logger.Info("generated recurring invoice",
				"invoice_id", repository.UUIDFromPg(invoice.ID),
				"invoice_number", invoice.QuoteNumber,
				"date", invoice.Date.Time.Format(time.DateOnly),
				"disabled", out == outcomeDisabled,
			)
		}
	}

	g.logger.Info("recurring run complete",
		"due", len(templates),
		"generated", result.Generated,
		"disabled", result.Disabled,
		"skipped", result.Skipped,
		"failed", result.Failed,
	)
	return result, nil
}

// Plan is what generating one cycle of a template produces.
type Plan struct {
	InvoiceDate time.Time
	DueDate     pgtype.Date
	NextDate    time.Time
	Disable     bool
}

// PlanCycle computes the invoice and template dates for the template's
// current cycle without touching the database.
func PlanCycle(tmpl repository.Quote) (Plan, error) {
	if !tmpl.RecurringNextDate.Valid {
		return Plan{}, fmt.Errorf("template has no next date")
	}
	freq, err := domain.ParseFrequency(tmpl.RecurringFrequency.String)
	if err != nil {
		return Plan{}, err
	}

	current := tmpl.RecurringNextDate.Time
	var anchor int
	if tmpl.Date.Valid {
		anchor = domain.CycleAnchorDay(tmpl.Date.Time, current)
	}
	next, err := freq.Advance(current, anchor)
	if err != nil {
		return Plan{}, err
	}

	plan := Plan{
		InvoiceDate: current,
		NextDate:    next,
	}

	// Keep the template's payment terms: due date sits the same number of
	// days after the invoice date.
	if tmpl.DueDate.Valid && tmpl.Date.Valid {
		offset := domain.DaysBetween(tmpl.Date.Time, tmpl.DueDate.Time)
		plan.DueDate = repository.Date(current.AddDate(0, 0, offset))
	}

	if tmpl.RecurringEndDate.Valid && next.After(tmpl.RecurringEndDate.Time) {
		plan.Disable = true
	}
	return plan, nil
}

func (g *Generator) generate(ctx context.Context, tmpl repository.Quote) (repository.Quote, outcome, error) {
	plan, err := PlanCycle(tmpl)
	if err != nil {
		return repository.Quote{}, 0, err
	}

	var invoice repository.Quote
	err = g.store.ExecTx(ctx, func(q repository.Querier) error {
		number, err := q.NextInvoiceNumber(ctx, tmpl.UserID)
		if err != nil {
			return fmt.Errorf("next invoice number: %w", err)
		}

		invoice, err = q.CreateGeneratedInvoice(ctx, repository.CreateGeneratedInvoiceParams{
			UserID:            tmpl.UserID,
			CustomerID:        tmpl.CustomerID,
			QuoteNumber:       FormatInvoiceNumber(number),
			Title:             tmpl.Title,
			Date:              repository.Date(plan.InvoiceDate),
			DueDate:           plan.DueDate,
			Items:             tmpl.Items,
			Subtotal:          tmpl.Subtotal,
			VatRate:           tmpl.VatRate,
			VatAmount:         tmpl.VatAmount,
			Total:             tmpl.Total,
			Notes:             tmpl.Notes,
			ShareToken:        repository.Text(g.newShareToken()),
			RecurringParentID: tmpl.ID,
		})
		if err != nil {
			return fmt.Errorf("create invoice: %w", err)
		}

		var rows int64
		if plan.Disable {
			rows, err = q.DisableRecurringTemplate(ctx, repository.DisableRecurringTemplateParams{
				ID:              tmpl.ID,
				CurrentNextDate: tmpl.RecurringNextDate,
			})
		} else {
			rows, err = q.AdvanceRecurringTemplate(ctx, repository.AdvanceRecurringTemplateParams{
				NextDate:        repository.Date(plan.NextDate),
				ID:              tmpl.ID,
				CurrentNextDate: tmpl.RecurringNextDate,
			})
		}
		if err != nil {
			return fmt.Errorf("update template: %w", err)
		}
		if rows == 0 {
			return errTemplateMoved
		}
		return nil
	})
	if err != nil {
		return repository.Quote{}, 0, err
	}

	if plan.Disable {
		return invoice, outcomeDisabled, nil
	}
	return invoice, outcomeAdvanced, nil
}

// FormatInvoiceNumber renders the per-user invoice sequence number.
func FormatInvoiceNumber(n int32) string {
	return fmt.Sprintf("INV-%04d", n)
}
