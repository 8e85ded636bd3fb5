package service

import (
	"context"
	"io"
	"math"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/Hashimp6/broperty/internal/model"
	"github.com/Hashimp6/broperty/internal/repository"
	"github.com/Hashimp6/broperty/internal/search"
	"github.com/Hashimp6/broperty/internal/storage"
)

// MaxUploads caps the files accepted by one media upload.
const MaxUploads = 10

var tracer = otel.Tracer("github.com/Hashimp6/broperty/internal/service")

// CreatePropertyInput is the body of POST /properties.
type CreatePropertyInput struct {
	Title          string                `json:"title" validate:"required,max=200"`
	Description    string                `json:"description" validate:"required,max=2000"`
	PropertyType   model.PropertyType    `json:"propertyType" validate:"required,oneof=house apartment villa land commercial"`
	ListingType    model.ListingType     `json:"listingType" validate:"required,oneof=sale rent"`
	Status         model.PropertyStatus  `json:"status" validate:"omitempty,oneof=available pending sold rented"`
	Price          float64               `json:"price" validate:"gte=0"`
	Address        model.Address         `json:"address"`
	Location       model.GeoPoint        `json:"location"`
	Features       model.Features        `json:"features"`
	Amenities      []string              `json:"amenities" validate:"max=50,dive,required,max=100"`
	ProjectDetails *model.ProjectDetails `json:"projectDetails"`
	Featured       bool                  `json:"featured"`
	AgentID        string                `json:"agentId"`
}

// UpdatePropertyInput is the body of PUT /properties/:id. Nil fields are left unchanged.
type UpdatePropertyInput struct {
	Title          *string               `json:"title"`
	Description    *string               `json:"description"`
	PropertyType   *model.PropertyType   `json:"propertyType"`
	ListingType    *model.ListingType    `json:"listingType"`
	Status         *model.PropertyStatus `json:"status"`
	Price          *float64              `json:"price"`
	Address        *model.Address        `json:"address"`
	Location       *model.GeoPoint       `json:"location"`
	Features       *model.Features       `json:"features"`
	Amenities      []string              `json:"amenities"`
	ProjectDetails *model.ProjectDetails `json:"projectDetails"`
	Featured       *bool                 `json:"featured"`
	AgentID        *string               `json:"agentId"`
}

// Upload is one file of a media upload. The caller owns and closes Reader.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// PropertyService defines the listing use cases.
type PropertyService interface {
	// Search validates the raw parameters, ranks the matching listings and
	// returns one hydrated page.
	Search(ctx context.Context, params search.Params) (*search.Result, error)

	// Get returns a hydrated listing by ID.
	Get(ctx context.Context, id string) (*model.Property, error)

	Create(ctx context.Context, actor model.Actor, in CreatePropertyInput) (*model.Property, error)
	Update(ctx context.Context, actor model.Actor, id string, in UpdatePropertyInput) (*model.Property, error)

	// Delete removes the listing, then its media objects on a best-effort basis.
	Delete(ctx context.Context, actor model.Actor, id string) error

	// AddMedia stores the files in object storage and appends them to the listing.
	// Objects already stored are removed again if a later step fails.
	AddMedia(ctx context.Context, actor model.Actor, id string, files []Upload) (*model.Property, error)
}

type propertyService struct {
	repo     repository.PropertyRepository
	users    search.UserLookup
	hydrator *search.Hydrator
	store    storage.Storage
	defaults search.Defaults
	metrics  *SearchMetrics
	log      *zap.Logger
	now      func() time.Time
}

// NewPropertyService constructs a PropertyService. metrics may be nil.
func NewPropertyService(
	repo repository.PropertyRepository,
	users search.UserLookup,
	store storage.Storage,
	defaults search.Defaults,
	metrics *SearchMetrics,
	log *zap.Logger,
) PropertyService {
	return &propertyService{
		repo:     repo,
		users:    users,
		hydrator: search.NewHydrator(users),
		store:    store,
		defaults: defaults,
		metrics:  metrics,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *propertyService) Search(ctx context.Context, params search.Params) (*search.Result, error) {
	ctx, span := tracer.Start(ctx, "PropertyService.Search")
	defer span.End()

	criteria, err := params.Criteria(s.defaults)
	if err != nil {
		span.SetStatus(codes.Error, "invalid parameters")
		return nil, err
	}
	q := search.Compile(criteria)
	span.SetAttributes(
		attribute.String("search.mode", string(q.Mode())),
		attribute.Int("search.page", q.Page.Number),
		attribute.Int("search.limit", q.Page.Size),
	)

	res, err := s.repo.Search(ctx, q)
	if err != nil {
		return nil, fail(span, storeErr("search properties", err))
	}
	if err := s.hydrator.Hydrate(ctx, res.Items); err != nil {
		return nil, fail(span, &StoreError{Op: "hydrate properties", Err: err})
	}

	s.metrics.observe(q.Mode())
	span.SetAttributes(attribute.Int("search.total", res.Total))
	return search.NewResult(q.Page, res.Items, res.Total), nil
}

func (s *propertyService) Get(ctx context.Context, id string) (*model.Property, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.hydrate(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *propertyService) Create(ctx context.Context, actor model.Actor, in CreatePropertyInput) (*model.Property, error) {
	if actor.ID == "" {
		return nil, ErrUnauthenticated
	}
	switch actor.Role {
	case model.RoleSeller, model.RoleAgent, model.RoleAdmin:
	default:
		return nil, ErrForbidden
	}

	if in.Status == "" {
		in.Status = model.PropertyStatusAvailable
	}
	if in.Address.Country == "" {
		in.Address.Country = "India"
	}
	if in.Features.AreaUnit == "" {
		in.Features.AreaUnit = "sqft"
	}
	if in.ProjectDetails != nil && in.ProjectDetails.Category == "" {
		in.ProjectDetails.Category = "standard"
	}
	if actor.Role == model.RoleAgent {
		in.AgentID = actor.ID
	}
	if err := checkListing(&in); err != nil {
		return nil, err
	}
	if err := s.checkParties(ctx, actor.ID, in.AgentID); err != nil {
		return nil, err
	}

	now := s.now()
	p := &model.Property{
		Title:          strings.TrimSpace(in.Title),
		Description:    in.Description,
		PropertyType:   in.PropertyType,
		ListingType:    in.ListingType,
		Status:         in.Status,
		Price:          in.Price,
		Address:        in.Address,
		Location:       model.NewGeoPoint(in.Location.Lng(), in.Location.Lat()),
		Features:       in.Features,
		Amenities:      in.Amenities,
		Media:          []model.Media{},
		ProjectDetails: in.ProjectDetails,
		Featured:       in.Featured,
		OwnerID:        actor.ID,
		AgentID:        in.AgentID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if p.Amenities == nil {
		p.Amenities = []string{}
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, storeErr("create property", err)
	}
	if err := s.hydrate(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *propertyService) Update(ctx context.Context, actor model.Actor, id string, in UpdatePropertyInput) (*model.Property, error) {
	if actor.ID == "" {
		return nil, ErrUnauthenticated
	}
	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.OwnerID != actor.ID && (p.AgentID == "" || p.AgentID != actor.ID) && !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	previousAgent := p.AgentID
	applyUpdate(p, in)
	merged := inputOf(p)
	if err := checkListing(&merged); err != nil {
		return nil, err
	}
	if p.AgentID != "" && p.AgentID != previousAgent {
		if err := s.checkAgent(ctx, p.AgentID); err != nil {
			return nil, err
		}
	}
	p.UpdatedAt = s.now()

	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, storeErr("update property", err)
	}
	if err := s.hydrate(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *propertyService) Delete(ctx context.Context, actor model.Actor, id string) error {
	if actor.ID == "" {
		return ErrUnauthenticated
	}
	p, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if p.OwnerID != actor.ID && !actor.IsAdmin() {
		return ErrForbidden
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeErr("delete property", err)
	}

	for _, m := range p.Media {
		if m.PublicID == "" {
			continue
		}
		if err := s.store.Delete(ctx, m.PublicID); err != nil {
			s.log.Warn("media cleanup failed",
				zap.String("property_id", id),
				zap.String("key", m.PublicID),
				zap.Error(err),
			)
		}
	}
	return nil
}

func (s *propertyService) AddMedia(ctx context.Context, actor model.Actor, id string, files []Upload) (*model.Property, error) {
	if actor.ID == "" {
		return nil, ErrUnauthenticated
	}
	if len(files) == 0 {
		return nil, invalid("files", "at least one file is required")
	}
	if len(files) > MaxUploads {
		return nil, invalid("files", "at most %d files per upload", MaxUploads)
	}
	for _, f := range files {
		if f.Reader == nil {
			return nil, invalid("files", "file %q has no content", f.Filename)
		}
		if mediaKind(f.ContentType) == "" {
			return nil, invalid("files", "file %q must be an image or a video", f.Filename)
		}
	}

	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.OwnerID != actor.ID && (p.AgentID == "" || p.AgentID != actor.ID) && !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	stored := make([]string, 0, len(files))
	rollback := func(cause error) error {
		for _, key := range stored {
			if err := s.store.Delete(ctx, key); err != nil {
				s.log.Warn("media rollback failed", zap.String("key", key), zap.Error(err))
			}
		}
		return cause
	}

	media := make([]model.Media, 0, len(files))
	for _, f := range files {
		key := path.Join("properties", p.ID, uuid.NewString()+strings.ToLower(path.Ext(f.Filename)))
		obj, err := s.store.Put(ctx, key, f.Reader, storage.PutObjectOptions{
			Size:        f.Size,
			ContentType: f.ContentType,
			Metadata:    map[string]string{"original-filename": f.Filename},
		})
		if err != nil {
			return nil, rollback(&StoreError{Op: "upload media", Err: err})
		}
		stored = append(stored, obj.Key)

		u, err := s.store.URL(ctx, obj.Key)
		if err != nil {
			return nil, rollback(&StoreError{Op: "resolve media url", Err: err})
		}
		media = append(media, model.Media{URL: u, PublicID: obj.Key, ResourceType: mediaKind(f.ContentType)})
	}

	if err := s.repo.AppendMedia(ctx, p.ID, media); err != nil {
		return nil, rollback(storeErr("append media", err))
	}
	return s.Get(ctx, p.ID)
}

func (s *propertyService) find(ctx context.Context, id string) (*model.Property, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrNotFound
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("find property", err)
	}
	return p, nil
}

func (s *propertyService) hydrate(ctx context.Context, p *model.Property) error {
	one := []model.Property{*p}
	if err := s.hydrator.Hydrate(ctx, one); err != nil {
		return &StoreError{Op: "hydrate property", Err: err}
	}
	*p = one[0]
	return nil
}

// checkParties confirms that the owner and the optional agent of a new
// listing are known users. An unknown owner means the caller's identity
// does not belong to any account.
func (s *propertyService) checkParties(ctx context.Context, ownerID, agentID string) error {
	ids := []string{ownerID}
	if agentID != "" && agentID != ownerID {
		ids = append(ids, agentID)
	}
	found, err := s.users.FindSummaries(ctx, ids)
	if err != nil {
		return &StoreError{Op: "resolve users", Err: err}
	}
	if _, ok := found[ownerID]; !ok {
		return ErrUnauthenticated
	}
	if _, ok := found[agentID]; agentID != "" && !ok {
		return invalid("agentId", "unknown user")
	}
	return nil
}

func (s *propertyService) checkAgent(ctx context.Context, agentID string) error {
	found, err := s.users.FindSummaries(ctx, []string{agentID})
	if err != nil {
		return &StoreError{Op: "resolve users", Err: err}
	}
	if _, ok := found[agentID]; !ok {
		return invalid("agentId", "unknown user")
	}
	return nil
}

// checkListing validates a listing beyond what struct tags express.
func checkListing(in *CreatePropertyInput) error {
	if err := validateStruct(in); err != nil {
		return err
	}
	if math.IsNaN(in.Price) || math.IsInf(in.Price, 0) {
		return invalid("price", "must be a finite number")
	}
	lng, lat := in.Location.Lng(), in.Location.Lat()
	if math.IsNaN(lng) || lng < -180 || lng > 180 {
		return invalid("location.coordinates", "longitude must be between -180 and 180")
	}
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return invalid("location.coordinates", "latitude must be between -90 and 90")
	}
	if in.PropertyType == model.PropertyTypeLand && in.Features.LandType == nil {
		return invalid("features.landType", "is required for land")
	}
	return nil
}

func applyUpdate(p *model.Property, in UpdatePropertyInput) {
	if in.Title != nil {
		p.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.PropertyType != nil {
		p.PropertyType = *in.PropertyType
	}
	if in.ListingType != nil {
		p.ListingType = *in.ListingType
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Address != nil {
		p.Address = *in.Address
	}
	if in.Location != nil {
		p.Location = model.NewGeoPoint(in.Location.Lng(), in.Location.Lat())
	}
	if in.Features != nil {
		p.Features = *in.Features
	}
	if in.Amenities != nil {
		p.Amenities = in.Amenities
	}
	if in.ProjectDetails != nil {
		p.ProjectDetails = in.ProjectDetails
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}
	if in.AgentID != nil {
		p.AgentID = *in.AgentID
	}
}

func inputOf(p *model.Property) CreatePropertyInput {
	return CreatePropertyInput{
		Title:          p.Title,
		Description:    p.Description,
		PropertyType:   p.PropertyType,
		ListingType:    p.ListingType,
		Status:         p.Status,
		Price:          p.Price,
		Address:        p.Address,
		Location:       p.Location,
		Features:       p.Features,
		Amenities:      p.Amenities,
		ProjectDetails: p.ProjectDetails,
		Featured:       p.Featured,
		AgentID:        p.AgentID,
	}
}

func mediaKind(contentType string) model.MediaKind {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return model.MediaKindImage
	case strings.HasPrefix(contentType, "video/"):
		return model.MediaKindVideo
	default:
		return ""
	}
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
