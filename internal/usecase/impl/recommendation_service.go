package impl

import (
	"context"
	"log/slog"
	"time"

	"slotwise/config"
	deliverycontext "slotwise/internal/delivery/context"
	"slotwise/internal/domain/eligibility"
	"slotwise/internal/domain/entity"
	domainerrors "slotwise/internal/domain/errors"
	"slotwise/internal/domain/repository"
	"slotwise/internal/domain/scoring"
	"slotwise/internal/domain/service"
	"slotwise/internal/errors"
	"slotwise/internal/infra/metrics"
	"slotwise/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	scoringKindSlots     = "slots"
	scoringKindLocations = "locations"
)

type recommendationService struct {
	txManager      repository.TransactionManager
	catalogRepo    repository.CatalogRepository
	slotRepo       repository.SlotRepository
	customerRepo   repository.CustomerRepository
	outboxRepo     repository.OutboxRepository
	ledger         service.CapacityLedger
	recorder       service.EventRecorder
	settings       usecase.SettingsUsecase
	metrics        *metrics.Metrics
	scoringTimeout time.Duration
	logger         *slog.Logger
	now            func() time.Time
	scoreSlots     func([]*entity.Slot, scoring.Context, entity.Weights, scoring.Options) ([]scoring.ScoredSlot, error)
}

// RecommendationServiceParams holds dependencies for RecommendationService, injected by Fx.
type RecommendationServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CatalogRepo  repository.CatalogRepository
	SlotRepo     repository.SlotRepository
	CustomerRepo repository.CustomerRepository
	OutboxRepo   repository.OutboxRepository
	Ledger       service.CapacityLedger
	Recorder     service.EventRecorder
	Settings     usecase.SettingsUsecase
	Metrics      *metrics.Metrics `optional:"true"`
	Config       *config.Config
	Logger       *slog.Logger
}

// NewRecommendationService creates the recommendation use case
func NewRecommendationService(params RecommendationServiceParams) usecase.RecommendationUsecase {
	var timeout time.Duration
	if params.Config.Scheduling != nil {
		timeout = params.Config.Scheduling.ScoringTimeout
	}

	return &recommendationService{
		txManager:      params.TxManager,
		catalogRepo:    params.CatalogRepo,
		slotRepo:       params.SlotRepo,
		customerRepo:   params.CustomerRepo,
		outboxRepo:     params.OutboxRepo,
		ledger:         params.Ledger,
		recorder:       params.Recorder,
		settings:       params.Settings,
		metrics:        params.Metrics,
		scoringTimeout: timeout,
		logger:         params.Logger,
		now:            time.Now,
		scoreSlots:     scoring.ScoreSlots,
	}
}

func (s *recommendationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// slotInputs is everything scoring needs, fetched concurrently.
type slotInputs struct {
	slots       []*entity.Slot
	preferences *entity.CustomerPreferences
	deliveries  []entity.ScheduledDelivery
}

func (s *recommendationService) RecommendSlots(ctx context.Context, input *usecase.SlotRecommendationInput) (*usecase.SlotRecommendationOutput, error) {
	now := s.now()

	settings, err := s.settings.Resolve(ctx, input.ShopID)
	if err != nil {
		return nil, err
	}
	catalog, err := s.catalogRepo.LoadCatalog(ctx, input.ShopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog")
	}

	from, days := entity.DateOf(now), settings.HorizonDays
	if input.Date != nil {
		from, days = entity.DateOf(*input.Date), 1
	}

	req := eligibility.Request{
		Postcode:        input.Postcode,
		Coordinate:      input.Coordinate,
		FulfillmentType: input.FulfillmentType,
	}
	verdicts, err := eligibility.EvaluateRange(req, catalog, from, days, now)
	if err != nil {
		return nil, err
	}

	eligibleDates := make(map[time.Time]eligibility.Result)
	for _, v := range verdicts {
		if v.Result.Eligible {
			eligibleDates[v.Date] = v.Result
		}
	}
	if len(eligibleDates) == 0 {
		return nil, verdicts[0].Result.Err()
	}
	location := verdicts[0].Result.Location
	for _, v := range verdicts {
		if v.Result.Eligible {
			location = v.Result.Location

			break
		}
	}

	in, err := s.fetchSlotInputs(ctx, input, location.ID, from, from.AddDate(0, 0, days-1))
	if err != nil {
		return nil, err
	}

	candidates, err := s.availableSlots(ctx, in.slots, eligibleDates, location, now)
	if err != nil {
		return nil, err
	}

	scoringCtx := scoring.Context{
		CustomerCoordinate:  input.Coordinate,
		Preferences:         in.preferences,
		ScheduledDeliveries: in.deliveries,
		Locations:           map[uuid.UUID]*entity.Location{location.ID: location},
	}
	opts := scoring.Options{TopK: settings.SlotTopK, MaxDistanceKm: settings.MaxDistanceKm}

	var (
		scored   []scoring.ScoredSlot
		fallback bool
	)
	if settings.RecommendationsEnabled {
		scored, fallback, err = s.scoreSlotsWithDeadline(ctx, candidates, scoringCtx, settings.Weights, opts)
		if err != nil {
			return nil, err
		}
	} else {
		scored = scoring.Chronological(candidates)
	}

	out := &usecase.SlotRecommendationOutput{
		Slots:    make([]usecase.RecommendedSlot, 0, len(scored)),
		Fallback: fallback,
	}
	shown := make([]entity.ShownCandidate, 0, len(scored))
	for _, sc := range scored {
		out.Slots = append(out.Slots, usecase.RecommendedSlot{
			Slot:              sc.Slot,
			Score:             sc.Score,
			Recommended:       sc.Recommended,
			Reason:            sc.Reason,
			CapacityRemaining: sc.Slot.Remaining(),
			DistanceKm:        sc.DistanceKm,
		})
		shown = append(shown, entity.ShownCandidate{ID: sc.Slot.ID, Score: sc.Score, Recommended: sc.Recommended})
	}

	s.recordViewed(ctx, entity.RecommendationViewed{
		ShopID:     input.ShopID,
		SessionID:  input.SessionID,
		CustomerID: input.CustomerID,
		Kind:       entity.RecommendationKindSlots,
		Candidates: shown,
		At:         now,
	})

	return out, nil
}

func (s *recommendationService) fetchSlotInputs(ctx context.Context, input *usecase.SlotRecommendationInput, locationID uuid.UUID, from, to time.Time) (*slotInputs, error) {
	var in slotInputs
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slots, err := s.slotRepo.FindSlots(gctx, repository.SlotQuery{
			ShopID:          input.ShopID,
			LocationIDs:     []uuid.UUID{locationID},
			FulfillmentType: input.FulfillmentType,
			From:            from,
			To:              to,
		})
		if err != nil {
			return errors.Wrap(err, "failed to load slots")
		}
		in.slots = slots

		return nil
	})

	if input.CustomerID != "" {
		g.Go(func() error {
			prefs, err := s.customerRepo.FindPreferences(gctx, input.ShopID, input.CustomerID)
			if err != nil {
				return errors.Wrap(err, "failed to load customer preferences")
			}
			in.preferences = prefs

			return nil
		})
	}

	if input.FulfillmentType == entity.FulfillmentDelivery && input.Coordinate != nil {
		g.Go(func() error {
			deliveries, err := s.slotRepo.FindScheduledDeliveries(gctx, input.ShopID, from, to)
			if err != nil {
				return errors.Wrap(err, "failed to load scheduled deliveries")
			}
			in.deliveries = deliveries

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &in, nil
}

// availableSlots keeps slots on eligible dates that are outside the lead
// time and still have capacity according to the ledger.
func (s *recommendationService) availableSlots(ctx context.Context, slots []*entity.Slot, eligibleDates map[time.Time]eligibility.Result, location *entity.Location, now time.Time) ([]*entity.Slot, error) {
	if len(slots) == 0 {
		return nil, nil
	}
	if err := s.ledger.Register(ctx, slots...); err != nil {
		return nil, errors.Wrap(err, "failed to register slots with the ledger")
	}

	tz := location.TimeLocation()
	out := make([]*entity.Slot, 0, len(slots))
	for _, slot := range slots {
		verdict, ok := eligibleDates[entity.DateOf(slot.Date)]
		if !ok {
			continue
		}
		if verdict.Rule != nil && slot.StartAt(tz).Sub(now) < verdict.Rule.LeadTime {
			continue
		}

		remaining, capacity, err := s.ledger.Remaining(ctx, slot.ID)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read capacity of slot %s", slot.ID)
		}
		if remaining <= 0 {
			continue
		}
		live := *slot
		live.Capacity = capacity
		live.BookedCount = capacity - remaining
		out = append(out, &live)
	}

	return out, nil
}

// scoreSlotsWithDeadline scores in the background and gives up when ctx or
// the configured scoring timeout expires, returning the candidates in
// chronological order instead.
func (s *recommendationService) scoreSlotsWithDeadline(
	ctx context.Context,
	candidates []*entity.Slot,
	sc scoring.Context,
	weights entity.Weights,
	opts scoring.Options,
) ([]scoring.ScoredSlot, bool, error) {
	if s.scoringTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.scoringTimeout)
		defer cancel()
	}

	type outcome struct {
		scored []scoring.ScoredSlot
		err    error
	}
	done := make(chan outcome, 1)
	start := time.Now()
	go func() {
		scored, err := s.scoreSlots(candidates, sc, weights, opts)
		done <- outcome{scored: scored, err: err}
	}()

	select {
	case o := <-done:
		s.metrics.ObserveScoring(scoringKindSlots, time.Since(start))
		if o.err != nil {
			return nil, false, o.err
		}

		return o.scored, false, nil
	case <-ctx.Done():
		s.metrics.ScoringFallback()
		s.log(ctx).Warn("Scoring deadline exceeded, returning chronological order",
			slog.Int("candidates", len(candidates)),
		)

		return scoring.Chronological(candidates), true, nil
	}
}

func (s *recommendationService) RecommendLocations(ctx context.Context, input *usecase.LocationRecommendationInput) (*usecase.LocationRecommendationOutput, error) {
	now := s.now()
	ft := input.FulfillmentType
	if ft == "" {
		ft = entity.FulfillmentPickup
	}
	if entity.NormalizePostcode(input.Postcode) == "" && input.Coordinate == nil {
		return nil, domainerrors.Invalid("postcode", "postcode or coordinates required")
	}
	if !ft.Valid() {
		return nil, domainerrors.Invalid("fulfillmentType", "must be delivery or pickup")
	}

	settings, err := s.settings.Resolve(ctx, input.ShopID)
	if err != nil {
		return nil, err
	}
	catalog, err := s.catalogRepo.LoadCatalog(ctx, input.ShopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog")
	}

	zones, reason := eligibility.ServingZones(eligibility.Request{
		Postcode:        input.Postcode,
		Coordinate:      input.Coordinate,
		FulfillmentType: ft,
	}, catalog)
	if len(zones) == 0 {
		return nil, domainerrors.NewIneligibleError(string(reason))
	}

	seen := make(map[uuid.UUID]bool)
	var locations []*entity.Location
	for _, z := range zones {
		for _, id := range z.LocationIDs {
			if l := catalog.Location(id); l != nil && !seen[id] {
				seen[id] = true
				locations = append(locations, l)
			}
		}
	}
	if len(locations) == 0 {
		return nil, domainerrors.NewConfigurationError("zone.locationIds", "no serving zone has a known location")
	}

	var prefs *entity.CustomerPreferences
	if input.CustomerID != "" {
		prefs, err = s.customerRepo.FindPreferences(ctx, input.ShopID, input.CustomerID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load customer preferences")
		}
	}

	start := time.Now()
	scored, err := scoring.ScoreLocations(locations, scoring.Context{
		CustomerCoordinate: input.Coordinate,
		Preferences:        prefs,
	}, settings.Weights, scoring.Options{TopK: settings.LocationTopK, MaxDistanceKm: settings.MaxDistanceKm})
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveScoring(scoringKindLocations, time.Since(start))

	out := &usecase.LocationRecommendationOutput{
		Locations: make([]usecase.RecommendedLocation, 0, len(scored)),
	}
	shown := make([]entity.ShownCandidate, 0, len(scored))
	for _, sl := range scored {
		rec := usecase.RecommendedLocation{
			Location:    sl.Location,
			DistanceKm:  sl.DistanceKm,
			Score:       sl.Score,
			Recommended: sl.Recommended,
			Reason:      sl.Reason,
		}
		if !settings.RecommendationsEnabled {
			rec.Recommended, rec.Reason = false, ""
		}
		out.Locations = append(out.Locations, rec)
		shown = append(shown, entity.ShownCandidate{ID: sl.Location.ID, Score: sl.Score, Recommended: rec.Recommended})
	}

	s.recordViewed(ctx, entity.RecommendationViewed{
		ShopID:     input.ShopID,
		SessionID:  input.SessionID,
		CustomerID: input.CustomerID,
		Kind:       entity.RecommendationKindLocations,
		Candidates: shown,
		At:         now,
	})

	return out, nil
}

// recordViewed is best effort: a failure to record analytics never fails
// the recommendation.
func (s *recommendationService) recordViewed(ctx context.Context, event entity.RecommendationViewed) {
	if event.SessionID == "" {
		return
	}
	if err := s.recorder.Record(ctx, s.outboxRepo, event); err != nil {
		s.log(ctx).Warn("Failed to record recommendation.viewed",
			slog.String("session_id", event.SessionID),
			slog.Any("error", err),
		)
	}
}

func (s *recommendationService) RecordSelection(ctx context.Context, input *usecase.SelectionInput) (*entity.RecommendationLog, error) {
	var issues []domainerrors.FieldIssue
	if input.SessionID == "" {
		issues = append(issues, domainerrors.FieldIssue{Field: "sessionId", Issue: "required"})
	}
	if input.SelectedID == uuid.Nil {
		issues = append(issues, domainerrors.FieldIssue{Field: "selectedId", Issue: "required"})
	}
	if input.Kind != entity.RecommendationKindSlots && input.Kind != entity.RecommendationKindLocations {
		issues = append(issues, domainerrors.FieldIssue{Field: "kind", Issue: "must be slots or locations"})
	}
	if len(issues) > 0 {
		return nil, domainerrors.NewValidationError(issues...)
	}

	now := s.now()
	wasRecommended := false
	for _, c := range input.CandidatesShown {
		if c.ID == input.SelectedID {
			wasRecommended = c.Recommended

			break
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	log := &entity.RecommendationLog{
		ID:              id,
		ShopID:          input.ShopID,
		SessionID:       input.SessionID,
		CustomerID:      input.CustomerID,
		CandidatesShown: input.CandidatesShown,
		SelectedID:      input.SelectedID,
		WasRecommended:  wasRecommended,
		Timestamp:       now,
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewCustomerRepository().AppendRecommendationLog(ctx, log); err != nil {
			return errors.Wrap(err, "failed to append recommendation log")
		}

		return s.recorder.Record(ctx, factory.NewOutboxRepository(), entity.RecommendationSelected{
			ShopID:            input.ShopID,
			SessionID:         input.SessionID,
			CustomerID:        input.CustomerID,
			Kind:              input.Kind,
			SelectedID:        input.SelectedID,
			WasRecommended:    wasRecommended,
			AlternativesShown: input.CandidatesShown,
			At:                now,
		})
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Recommendation selection recorded",
		slog.String("session_id", input.SessionID),
		slog.Bool("was_recommended", wasRecommended),
	)

	return log, nil
}
