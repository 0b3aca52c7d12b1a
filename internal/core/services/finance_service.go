package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/household_finance/internal/apperrors"
	"github.com/SscSPs/household_finance/internal/core/domain"
	portsrepo "github.com/SscSPs/household_finance/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/household_finance/internal/core/ports/services"
	"github.com/SscSPs/household_finance/internal/dto"
	"github.com/SscSPs/household_finance/internal/utils"
	"github.com/SscSPs/household_finance/internal/utils/accounting"
)

// FinanceService is the domain store. It keeps the current financial document
// in memory, applies every mutation to it and hands the result to a background
// writer for persistence. Nothing can be read or changed before Init has loaded
// the stored document.
type FinanceService struct {
	BaseService
	repo        portsrepo.DocumentRepositoryFacade
	newID       utils.IDGenerator
	saveTimeout time.Duration

	mu     sync.RWMutex
	doc    domain.FinancialDocument
	ready  bool
	writer *documentWriter
}

// FinanceOption is a functional option for configuring the finance service
type FinanceOption func(*FinanceService)

// WithIDGenerator replaces the UUID generator used for new entities.
func WithIDGenerator(gen utils.IDGenerator) FinanceOption {
	return func(s *FinanceService) {
		s.newID = gen
	}
}

// WithLogger sets the logger used outside request scope.
func WithLogger(logger *slog.Logger) FinanceOption {
	return func(s *FinanceService) {
		s.Logger = logger
	}
}

// WithSaveTimeout bounds each background save. Non-positive values keep the default.
func WithSaveTimeout(d time.Duration) FinanceOption {
	return func(s *FinanceService) {
		if d > 0 {
			s.saveTimeout = d
		}
	}
}

// NewFinanceService creates a finance service backed by repo.
func NewFinanceService(repo portsrepo.DocumentRepositoryFacade, options ...FinanceOption) *FinanceService {
	svc := &FinanceService{
		repo:        repo,
		newID:       utils.NewID,
		saveTimeout: defaultSaveTimeout,
		doc:         domain.NewFinancialDocument(),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure FinanceService implements the service interfaces
var (
	_ portssvc.FinanceSvcFacade = (*FinanceService)(nil)
	_ portssvc.Lifecycle        = (*FinanceService)(nil)
)

// Init loads the stored document and marks the service ready. A missing
// document starts the household empty.
func (s *FinanceService) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ready {
		return nil
	}

	loaded, err := s.repo.LoadDocument(ctx)
	switch {
	case errors.Is(err, apperrors.ErrNotFound), err == nil && loaded == nil:
		s.LogInfo(ctx, "No stored document found, starting empty")
		s.doc = domain.NewFinancialDocument()
	case err != nil:
		s.LogError(ctx, err, "Failed to load document")
		return fmt.Errorf("failed to load document in service: %w", err)
	default:
		s.doc = loaded.Clone()
		s.LogInfo(ctx, "Document loaded",
			slog.Int("members", len(s.doc.Members)),
			slog.Int("assets", len(s.doc.Assets)),
			slog.Int("liabilities", len(s.doc.Liabilities)),
			slog.Int("incomes", len(s.doc.Incomes)))
	}

	s.writer = newDocumentWriter(s.repo, s.GetLogger(context.Background()), s.saveTimeout)
	s.ready = true
	return nil
}

// Flush blocks until every mutation made so far has been saved.
func (s *FinanceService) Flush(ctx context.Context) error {
	w, err := s.currentWriter()
	if err != nil {
		return err
	}
	return w.flush(ctx)
}

// Close saves pending changes and stops accepting mutations.
func (s *FinanceService) Close(ctx context.Context) error {
	s.mu.Lock()
	if !s.ready {
		s.mu.Unlock()
		return nil
	}
	s.ready = false
	w := s.writer
	s.mu.Unlock()
	return w.close(ctx)
}

func (s *FinanceService) currentWriter() (*documentWriter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.ready {
		return nil, apperrors.ErrNotReady
	}
	return s.writer, nil
}

func (s *FinanceService) snapshot() (domain.FinancialDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.ready {
		return domain.FinancialDocument{}, apperrors.ErrNotReady
	}
	return s.doc, nil
}

// mutate applies fn to the current document under the write lock and queues the
// result for saving. The queue keeps the order in which mutations were applied.
func (s *FinanceService) mutate(ctx context.Context, op string, fn func(domain.FinancialDocument) (domain.FinancialDocument, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return apperrors.ErrNotReady
	}

	next, err := fn(s.doc)
	if err != nil {
		return err
	}
	s.doc = next
	s.writer.enqueue(next)
	s.LogDebug(ctx, "Document changed", slog.String("operation", op))
	return nil
}

// nextID draws an id that no entity of doc uses yet.
func (s *FinanceService) nextID(doc domain.FinancialDocument) (string, error) {
	id := s.newID()
	if id == "" || doc.HasID(id) {
		return "", fmt.Errorf("%w: generated id %q is already in use", apperrors.ErrDuplicate, id)
	}
	return id, nil
}

// scheduleIDs returns a generator for the installment ids of one new liability.
// Each id must be unused in doc and within the schedule itself; the first
// collision is reported by the returned error func.
func (s *FinanceService) scheduleIDs(doc domain.FinancialDocument, liabilityID string) (utils.IDGenerator, func() error) {
	used := map[string]struct{}{liabilityID: {}}
	var firstErr error
	gen := func() string {
		if firstErr != nil {
			return ""
		}
		id, err := s.nextID(doc)
		if err == nil {
			if _, dup := used[id]; dup {
				err = fmt.Errorf("%w: generated id %q is already in use", apperrors.ErrDuplicate, id)
			}
		}
		if err != nil {
			firstErr = err
			return ""
		}
		used[id] = struct{}{}
		return id
	}
	return gen, func() error { return firstErr }
}

func requireMember(doc domain.FinancialDocument, memberID string) error {
	if _, ok := doc.FindMember(memberID); !ok {
		return fmt.Errorf("%w: member %s does not exist", apperrors.ErrValidation, memberID)
	}
	return nil
}

func requireNonNegative(field string, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("%w: %s must not be negative, got %d", apperrors.ErrValidation, field, amount)
	}
	return nil
}

// GetDocument returns the current document.
func (s *FinanceService) GetDocument(ctx context.Context) (domain.FinancialDocument, error) {
	doc, err := s.snapshot()
	if err != nil {
		return domain.FinancialDocument{}, err
	}
	return doc.Clone(), nil
}

// --- Members ---

func (s *FinanceService) ListMembers(ctx context.Context) ([]domain.Member, error) {
	doc, err := s.GetDocument(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Members, nil
}

func (s *FinanceService) AddMember(ctx context.Context, req dto.CreateMemberRequest) (*domain.Member, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: member name is required", apperrors.ErrValidation)
	}

	var member domain.Member
	err := s.mutate(ctx, "add_member", func(doc domain.FinancialDocument) (domain.FinancialDocument, error) {
		id, err := s.nextID(doc)
		if err != nil {
			return doc, err
		}
		member = domain.Member{ID: id, Name: name}
		return doc.AddMember(member), nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to add member", slog.String("name", name))
		return nil, err
	}

	s.LogInfo(ctx, "Member added", slog.String("member_id", member.ID))
	return &member, nil
}

func (s *FinanceService) DeleteMember(ctx context.Context, memberID string) error {
	err := s.mutate(ctx, "delete_member", func(doc domain.FinancialDocument) (domain.FinancialDocument, error) {
		return doc.DeleteMember(memberID), nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete member", slog.String("member_id", memberID))
		return err
	}
	s.LogInfo(ctx, "Member deleted", slog.String("member_id", memberID))
	return nil
}

// --- Assets ---

func (s *FinanceService) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	doc, err := s.GetDocument(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Assets, nil
}

func (s *FinanceService) AddAsset(ctx context.Context, req dto.CreateAssetRequest) (*domain.Asset, error) {
	if !req.Type.IsValid() {
		return nil, fmt.Errorf("%w: unknown asset type %q", apperrors.ErrValidation, req.Type)
	}
	if err := requireNonNegative("amount", req.Amount); err != nil {
		return nil, err
	}

	var asset domain.Asset
	err := s.mutate(ctx, "add_asset", func(doc domain.FinancialDocument) (domain.FinancialDocument, error) {
		if err := requireMember(doc, req.MemberID); err != nil {
			return doc, err
		}
		id, err := s.nextID(doc)
		if err != nil {
			return doc, err
		}
		asset = domain.Asset{
			ID:       id,
			MemberID: req.MemberID,
			Type:     req.Type,
			Title:    strings.TrimSpace(req.Title),
			Amount:   req.Amount,
		}
		return doc.AddAsset(asset), nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to add asset", slog.String("member_id", req.MemberID))
		return nil, err
	}

	s.LogInfo(ctx, "Asset added", slog.String("asset_id", asset.ID), slog.String("member_id", asset.MemberID))
	return &asset, nil
}

func (s *FinanceService) UpdateAssetAmount(ctx context.Context, assetID string, amount int64) (*domain.Asset, error) {
	if err := requireNonNegative("amount", amount); err != nil {
		return nil, err
	}

	var asset domain.Asset
	err := s.mutate(ctx, "update_asset_amount", func(doc domain.FinancialDocument) (domain.FinancialDocument, error) {
		next, ok := doc.UpdateAssetAmount(assetID, amount)
		if !ok {
			return doc, fmt.Errorf("asset %s: %w", assetID, apperrors.ErrNotFound)
		}
		asset, _ = next.FindAsset(assetID)
		return next, nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update asset amount", slog.String("asset_id", assetID))
		return nil, err
	}
	return &asset, nil
}

func (s *FinanceService) DeleteAsset(ctx context.Context, assetID string) error {
	err := s.mutate(ctx, "delete_asset", func(doc domain.FinancialDocument) (domain.FinancialDocument, error) {
		return doc.DeleteAsset(assetID), nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete asset", slog.String("asset_id", assetID))
		return err
	}
	return nil
}

// --- Liabilities ---

func (s *FinanceService) ListLiabilities(ctx context.Context) ([]domain.Liability, error) {
	doc, err := s.GetDocument(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Liabilities, nil
}

func (s *FinanceService) GetLiability(ctx context.Context, liabilityID string) (*domain.Liability, error) {
	doc, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	l, ok := doc.FindLiability(liabilityID)
	if !ok {
		return nil, fmt.Errorf("liability %s: %w", liabilityID, apperrors.ErrNotFound)
	}
	return &l, nil
}

func (s *FinanceService) AddLiability(ctx context.Context, req dto.CreateLiabilityRequest) (*domain.Liability, error) {
	start, err := domain.ParseDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if !req.RepaymentType.IsValid() {
		return nil, fmt.Errorf("%w: unknown repayment type %q", apperrors.ErrValidation, req.RepaymentType)
	}

	var liability domain.Liability
	err = s.mutate(ctx, "add_liability", func(doc domain.FinancialDocument) (domain.FinancialDocument, error) {
		if err := requireMember(doc, req.MemberID); err != nil {
			return doc, err
		}
		id, err := s.nextID(doc)
		if err != nil {
			return doc, err
		}
		newInstallmentID, idErr := s.scheduleIDs(doc, id)
		installments, err := accounting.GenerateSchedule(req.TotalAmount, start, req.RepaymentType, req.Count(), newInstallmentID)
		if err != nil {
			return doc, err
		}
		if err := idErr(); err != nil {
			return doc, err
		}
		liability = domain.Liability{
			ID:            id,
			MemberID:      req.MemberID,
			Title:         strings.TrimSpace(req.Title),
			TotalAmount:   req.TotalAmount,
			RepaymentType: req.RepaymentType,
			Installments:  installments,
			StartDate:     start,
			Description:   req.Description,
		}
		return doc.AddLiability(liability), nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to add liability", slog.String("member_id", req.MemberID))
		return nil, err
	}

	s.LogInfo(ctx, "Liability added",
		slog.String("liability_id", liability.ID),
		slog.Int("installments", len(liability.Installments)))
	return &liability, nil
}

func (s *FinanceService) DeleteLiability(ctx context.Context, liabilityID string) error {
	err := s.mutate(ctx, "delete_liability", func(doc domain.FinancialDocument) (domain.FinancialDocument, error) {
		return doc.DeleteLiability(liabilityID), nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete liability", slog.String("liability_id", liabilityID))
		return err
	}
	return nil
}

func (s *FinanceService) ToggleInstallmentPaid(ctx context.Context, liabilityID, installmentID string) (*domain.Liability, error) {
	return s.updateInstallment(ctx, "toggle_installment_paid", liabilityID, installmentID,
		func(doc domain.FinancialDocument) (domain.FinancialDocument, bool) {
			return doc.ToggleInstallmentPaid(liabilityID, installmentID)
		})
}

func (s *FinanceService) UpdateInstallmentAmount(ctx context.Context, liabilityID, installmentID string, amount int64) (*domain.Liability, error) {
	if err := requireNonNegative("amount", amount); err != nil {
		return nil, err
	}
	return s.updateInstallment(ctx, "update_installment_amount", liabilityID, installmentID,
		func(doc domain.FinancialDocument) (domain.FinancialDocument, bool) {
			return doc.UpdateInstallmentAmount(liabilityID, installmentID, amount)
		})
}

func (s *FinanceService) updateInstallment(ctx context.Context, op, liabilityID, installmentID string,
	apply func(domain.FinancialDocument) (domain.FinancialDocument, bool)) (*domain.Liability, error) {
	var liability domain.Liability
	err := s.mutate(ctx, op, func(doc domain.FinancialDocument) (domain.FinancialDocument, error) {
		next, ok := apply(doc)
		if !ok {
			return doc, fmt.Errorf("installment %s of liability %s: %w", installmentID, liabilityID, apperrors.ErrNotFound)
		}
		liability, _ = next.FindLiability(liabilityID)
		return next, nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update installment",
			slog.String("operation", op),
			slog.String("liability_id", liabilityID),
			slog.String("installment_id", installmentID))
		return nil, err
	}
	return &liability, nil
}

// --- Incomes ---

func (s *FinanceService) ListIncomes(ctx context.Context) ([]domain.Income, error) {
	doc, err := s.GetDocument(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Incomes, nil
}

func (s *FinanceService) AddIncome(ctx context.Context, req dto.CreateIncomeRequest) (*domain.Income, error) {
	if err := requireNonNegative("amount", req.Amount); err != nil {
		return nil, err
	}

	var income domain.Income
	err := s.mutate(ctx, "add_income", func(doc domain.FinancialDocument) (domain.FinancialDocument, error) {
		if err := requireMember(doc, req.MemberID); err != nil {
			return doc, err
		}
		id, err := s.nextID(doc)
		if err != nil {
			return doc, err
		}
		income = domain.Income{
			ID:          id,
			MemberID:    req.MemberID,
			Source:      strings.TrimSpace(req.Source),
			Amount:      req.Amount,
			IsRecurring: req.IsRecurring,
		}
		return doc.AddIncome(income), nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to add income", slog.String("member_id", req.MemberID))
		return nil, err
	}

	s.LogInfo(ctx, "Income added", slog.String("income_id", income.ID), slog.String("member_id", income.MemberID))
	return &income, nil
}

func (s *FinanceService) DeleteIncome(ctx context.Context, incomeID string) error {
	err := s.mutate(ctx, "delete_income", func(doc domain.FinancialDocument) (domain.FinancialDocument, error) {
		return doc.DeleteIncome(incomeID), nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete income", slog.String("income_id", incomeID))
		return err
	}
	return nil
}
