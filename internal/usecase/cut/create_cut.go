package cut

import (
	"context"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/softbarber/internal/audit"
	"github.com/BruksfildServices01/softbarber/internal/domain/access"
	"github.com/BruksfildServices01/softbarber/internal/domain/client"
	"github.com/BruksfildServices01/softbarber/internal/domain/cut"
	"github.com/BruksfildServices01/softbarber/internal/domain/user"
	"github.com/BruksfildServices01/softbarber/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateCutInput struct {
	Identity access.Identity

	// BarberID is only honoured for admins.
	BarberID *uint

	ClientID       *uint
	ClientName     string
	ClientLastName string

	Amount        float64
	PaymentMethod string
	Observations  string
}

// ======================================================
// USE CASE
// ======================================================

type CreateCut struct {
	cuts    cut.Repository
	clients client.Repository
	users   user.Repository
	audit   audit.Recorder
	log     *zap.Logger
}

func NewCreateCut(
	cuts cut.Repository,
	clients client.Repository,
	users user.Repository,
	audit audit.Recorder,
	log *zap.Logger,
) *CreateCut {
	return &CreateCut{
		cuts:    cuts,
		clients: clients,
		users:   users,
		audit:   audit,
		log:     log,
	}
}

func (uc *CreateCut) Execute(
	ctx context.Context,
	in CreateCutInput,
) (*models.Cut, error) {

	c := &models.Cut{
		ClientName:     strings.TrimSpace(in.ClientName),
		ClientLastName: strings.TrimSpace(in.ClientLastName),
		Observations:   strings.TrimSpace(in.Observations),
	}

	// --------------------------------------------------
	// Validation
	// --------------------------------------------------
	if c.ClientName == "" || c.ClientLastName == "" {
		return nil, ErrMissingClient
	}

	amount := math.Round(in.Amount*100) / 100
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, ErrInvalidAmount
	}
	c.Amount = amount

	method := cut.PaymentMethod(strings.ToLower(strings.TrimSpace(in.PaymentMethod)))
	if !method.Valid() {
		return nil, ErrInvalidPaymentMethod
	}
	c.PaymentMethod = string(method)

	// --------------------------------------------------
	// Barber
	// --------------------------------------------------
	barber, err := uc.resolveBarber(ctx, in)
	if err != nil {
		return nil, err
	}
	c.BarberID = barber.ID

	// --------------------------------------------------
	// Client
	// --------------------------------------------------
	clientID, newClient, err := uc.resolveClient(ctx, in.ClientID, c.ClientName, c.ClientLastName)
	if err != nil {
		return nil, err
	}
	c.ClientID = clientID

	if newClient != nil {
		err = uc.cuts.CreateWithClient(ctx, c, newClient)
	} else {
		err = uc.cuts.Create(ctx, c)
	}
	if err != nil {
		return nil, err
	}
	c.Barber = *barber

	actor := in.Identity.UserID
	uc.audit.Dispatch(audit.Event{
		UserID:   &actor,
		Action:   "cut_created",
		Entity:   "cut",
		EntityID: &c.ID,
		Metadata: map[string]any{
			"barber_id":      c.BarberID,
			"amount":         c.Amount,
			"payment_method": c.PaymentMethod,
		},
	})

	return c, nil
}

// resolveBarber pins a barbero to self. An admin may attribute the cut to
// any active barbero and defaults to self.
func (uc *CreateCut) resolveBarber(
	ctx context.Context,
	in CreateCutInput,
) (*models.User, error) {

	self := in.Identity.UserID
	if !in.Identity.IsAdmin() || in.BarberID == nil || *in.BarberID == 0 || *in.BarberID == self {
		return uc.users.GetByID(ctx, self)
	}

	b, err := uc.users.GetByID(ctx, *in.BarberID)
	if err != nil {
		return nil, err
	}
	if b.Role != models.RoleBarbero || !b.Active {
		return nil, ErrInvalidBarber
	}
	return b, nil
}

// resolveClient returns the client to link, or a client to create together
// with the cut when the name has no match yet.
func (uc *CreateCut) resolveClient(
	ctx context.Context,
	clientID *uint,
	name string,
	lastName string,
) (*uint, *models.Client, error) {

	if clientID != nil && *clientID != 0 {
		existing, err := uc.clients.GetByID(ctx, *clientID)
		if err != nil {
			return nil, nil, err
		}
		return &existing.ID, nil, nil
	}

	matches, err := uc.clients.FindByFullName(ctx, name, lastName)
	if err != nil {
		return nil, nil, err
	}

	switch len(matches) {
	case 0:
		return nil, &models.Client{Name: name, LastName: lastName}, nil
	case 1:
		id := matches[0].ID
		return &id, nil, nil
	}

	uc.log.Warn("ambiguous client for cut, leaving unlinked",
		zap.String("name", name),
		zap.String("last_name", lastName),
		zap.Int("matches", len(matches)),
	)
	return nil, nil, nil
}
