package service

import (
	"context"
	"testing"
	"time"

	"github.com/receiptforge/receiptforge-api/internal/domain/enum"
	"github.com/receiptforge/receiptforge-api/internal/infrastructure/repository"
	"github.com/receiptforge/receiptforge-api/pkg/printer"
)

func newGenerateFixture(t *testing.T, delay time.Duration) (*ReceiptService, *GenerateService, context.Context) {
	t.Helper()
	sessions := repository.NewSessionRepository()
	return NewReceiptService(sessions),
		NewGenerateService(sessions, printer.NewNullPrinter(), delay),
		context.Background()
}

func TestGenerateStampsFreshIdentifiers(t *testing.T) {
	receipts, gen, ctx := newGenerateFixture(t, time.Hour)

	session, err := receipts.CreateSession(ctx, "en")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if _, err := receipts.SelectTemplate(ctx, session.ID, enum.TemplateHotel); err != nil {
		t.Fatalf("SelectTemplate: %v", err)
	}
	before, err := receipts.GetSession(ctx, session.ID)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}

	after, started, err := gen.Generate(ctx, session.ID)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !started {
		t.Fatal("Generate did not start on an idle session")
	}
	if after.Receipt.ReceiptNumber == before.Receipt.ReceiptNumber {
		t.Error("receipt number not regenerated")
	}
	if after.Receipt.PaymentInfo.TransactionID == before.Receipt.PaymentInfo.TransactionID {
		t.Error("transaction ID not regenerated")
	}
	if after.Receipt.Template.ID != enum.TemplateHotel {
		t.Errorf("template changed by generate: %q", after.Receipt.Template.ID)
	}
	if !after.Generated || !after.Animate {
		t.Errorf("generate flags = (%v, %v), want (true, true)", after.Generated, after.Animate)
	}
	if after.State != enum.GenerateStateGenerating {
		t.Errorf("state = %v, want Generating", after.State)
	}
}

func TestGenerateReentryIgnored(t *testing.T) {
	receipts, gen, ctx := newGenerateFixture(t, time.Hour)

	session, err := receipts.CreateSession(ctx, "en")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	first, started, err := gen.Generate(ctx, session.ID)
	if err != nil || !started {
		t.Fatalf("first Generate: started=%v err=%v", started, err)
	}

	second, started, err := gen.Generate(ctx, session.ID)
	if err != nil {
		t.Fatalf("second Generate: %v", err)
	}
	if started {
		t.Error("re-entrant generate was not ignored")
	}
	if second.Receipt.ReceiptNumber != first.Receipt.ReceiptNumber {
		t.Error("ignored generate still changed the receipt number")
	}
}

func TestGenerateSettlesToIdle(t *testing.T) {
	receipts, gen, ctx := newGenerateFixture(t, 10*time.Millisecond)

	session, err := receipts.CreateSession(ctx, "en")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if _, _, err := gen.Generate(ctx, session.ID); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		got, err := receipts.GetSession(ctx, session.ID)
		if err != nil {
			t.Fatalf("GetSession: %v", err)
		}
		if got.State == enum.GenerateStateIdle {
			if got.Animate {
				t.Error("animate flag survived settle")
			}
			if !got.Generated {
				t.Error("generated flag lost on settle")
			}
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("session never returned to Idle")
}
