package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Hashimp6/broperty/internal/model"
	"github.com/Hashimp6/broperty/internal/repository"
	"github.com/Hashimp6/broperty/internal/repository/memory"
	repoMocks "github.com/Hashimp6/broperty/internal/repository/mocks"
	"github.com/Hashimp6/broperty/internal/search"
	"github.com/Hashimp6/broperty/internal/storage"
	storeMocks "github.com/Hashimp6/broperty/internal/storage/mocks"
)

var (
	seller = model.Actor{ID: "seller-1", Role: model.RoleSeller}
	agent  = model.Actor{ID: "agent-1", Role: model.RoleAgent}
	buyer  = model.Actor{ID: "buyer-1", Role: model.RoleBuyer}
	admin  = model.Actor{ID: "admin-1", Role: model.RoleAdmin}
)

func validInput() CreatePropertyInput {
	return CreatePropertyInput{
		Title:        "  Sea View Flat ",
		Description:  "Two bedroom flat close to the beach",
		PropertyType: model.PropertyTypeApartment,
		ListingType:  model.ListingTypeSale,
		Price:        4500000,
		Address:      model.Address{City: "Kochi", State: "Kerala", ZipCode: "682001"},
		Location:     model.NewGeoPoint(76.26, 9.93),
		Features:     model.Features{Bedrooms: 2, Bathrooms: 2, Area: 1100},
	}
}

func storedListing(id string) *model.Property {
	return &model.Property{
		ID:           id,
		Title:        "Sea View Flat",
		Description:  "Two bedroom flat close to the beach",
		PropertyType: model.PropertyTypeApartment,
		ListingType:  model.ListingTypeSale,
		Status:       model.PropertyStatusAvailable,
		Price:        4500000,
		Address:      model.Address{City: "Kochi", State: "Kerala", ZipCode: "682001", Country: "India"},
		Location:     model.NewGeoPoint(76.26, 9.93),
		Features:     model.Features{Bedrooms: 2, Bathrooms: 2, Area: 1100, AreaUnit: "sqft"},
		OwnerID:      seller.ID,
		CreatedAt:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func known(actors ...model.Actor) map[string]model.UserSummary {
	out := make(map[string]model.UserSummary, len(actors))
	for _, a := range actors {
		out[a.ID] = model.UserSummary{ID: a.ID}
	}
	return out
}

func TestPropertyService_Search(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	a := *storedListing("A")
	a.Location, a.CreatedAt = model.NewGeoPoint(76.95, 8.52), now.Add(-time.Hour)
	b := *storedListing("B")
	b.Location, b.CreatedAt, b.AgentID = model.NewGeoPoint(76.96, 8.53), now, agent.ID

	props := memory.NewPropertyMemory(a, b)
	users := memory.NewUserMemory(
		model.User{UserSummary: model.UserSummary{ID: seller.ID, Name: "Sana"}, Role: model.RoleSeller},
		model.User{UserSummary: model.UserSummary{ID: agent.ID, Name: "Arun"}, Role: model.RoleAgent},
	)
	reg := prometheus.NewRegistry()
	metrics, err := NewSearchMetrics(reg)
	require.NoError(t, err)
	svc := NewPropertyService(props, users, storage.Unavailable{}, search.DefaultDefaults, metrics, zap.NewNop())

	t.Run("proximity ranks nearest first and hydrates", func(t *testing.T) {
		res, err := svc.Search(ctx, search.Params{Lat: "8.5241", Lng: "76.9366", Radius: "5"})
		require.NoError(t, err)

		require.Len(t, res.Properties, 2)
		assert.Equal(t, "A", res.Properties[0].ID)
		assert.Equal(t, "B", res.Properties[1].ID)
		require.NotNil(t, res.Properties[0].Distance)
		assert.Less(t, *res.Properties[0].Distance, *res.Properties[1].Distance)
		assert.Equal(t, 2, res.Total)
		assert.Equal(t, 1, res.Pages)

		require.NotNil(t, res.Properties[0].Owner)
		assert.Equal(t, "Sana", res.Properties[0].Owner.Name)
		require.NotNil(t, res.Properties[1].Agent)
		assert.Equal(t, "Arun", res.Properties[1].Agent.Name)
	})

	t.Run("recency without a point", func(t *testing.T) {
		res, err := svc.Search(ctx, search.Params{City: "koc"})
		require.NoError(t, err)

		require.Len(t, res.Properties, 2)
		assert.Equal(t, "B", res.Properties[0].ID)
		assert.Nil(t, res.Properties[0].Distance)
	})

	t.Run("invalid parameters", func(t *testing.T) {
		_, err := svc.Search(ctx, search.Params{Lat: "8.52"})
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.searches.WithLabelValues("proximity")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.searches.WithLabelValues("recency")))
}

func TestPropertyService_SearchStoreFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("repository error", func(t *testing.T) {
		mRepo := new(repoMocks.MockPropertyRepository)
		mRepo.On("Search", ctx, mock.Anything).Return(nil, errors.New("db fail"))
		svc := NewPropertyService(mRepo, nil, nil, search.DefaultDefaults, nil, zap.NewNop())

		_, err := svc.Search(ctx, search.Params{})
		var se *StoreError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, "search properties", se.Op)
		mRepo.AssertExpectations(t)
	})

	t.Run("hydration error", func(t *testing.T) {
		mRepo := new(repoMocks.MockPropertyRepository)
		mUsers := new(repoMocks.MockUserRepository)
		mRepo.On("Search", ctx, mock.Anything).
			Return(&repository.PageResult[model.Property]{Items: []model.Property{*storedListing("p1")}, Total: 1}, nil)
		mUsers.On("FindSummaries", ctx, []string{seller.ID}).Return(nil, errors.New("users down"))
		svc := NewPropertyService(mRepo, mUsers, nil, search.DefaultDefaults, nil, zap.NewNop())

		_, err := svc.Search(ctx, search.Params{})
		var se *StoreError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, "hydrate properties", se.Op)
		mRepo.AssertExpectations(t)
		mUsers.AssertExpectations(t)
	})
}

func TestPropertyService_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         string
		setupMocks func(mRepo *repoMocks.MockPropertyRepository, mUsers *repoMocks.MockUserRepository)
		wantErr    error
	}{
		{
			name: "happy path",
			id:   "p1",
			setupMocks: func(mRepo *repoMocks.MockPropertyRepository, mUsers *repoMocks.MockUserRepository) {
				mRepo.On("FindByID", ctx, "p1").Return(storedListing("p1"), nil)
				mUsers.On("FindSummaries", ctx, []string{seller.ID}).
					Return(map[string]model.UserSummary{seller.ID: {ID: seller.ID, Name: "Sana"}}, nil)
			},
		},
		{
			name:       "empty id",
			id:         " ",
			setupMocks: func(mRepo *repoMocks.MockPropertyRepository, mUsers *repoMocks.MockUserRepository) {},
			wantErr:    ErrNotFound,
		},
		{
			name: "not found",
			id:   "missing",
			setupMocks: func(mRepo *repoMocks.MockPropertyRepository, mUsers *repoMocks.MockUserRepository) {
				mRepo.On("FindByID", ctx, "missing").Return(nil, repository.ErrNotFound)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockPropertyRepository)
			mUsers := new(repoMocks.MockUserRepository)
			svc := NewPropertyService(mRepo, mUsers, nil, search.DefaultDefaults, nil, zap.NewNop())

			tt.setupMocks(mRepo, mUsers)

			p, err := svc.Get(ctx, tt.id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, p)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.id, p.ID)
				require.NotNil(t, p.Owner)
				assert.Equal(t, "Sana", p.Owner.Name)
			}
			mRepo.AssertExpectations(t)
			mUsers.AssertExpectations(t)
		})
	}
}

func TestPropertyService_Create(t *testing.T) {
	ctx := context.Background()
	land := "agricultural"

	tests := []struct {
		name       string
		actor      model.Actor
		input      func() CreatePropertyInput
		setupMocks func(mRepo *repoMocks.MockPropertyRepository, mUsers *repoMocks.MockUserRepository)
		wantErr    error
		wantField  string
	}{
		{
			name:  "seller with defaults",
			actor: seller,
			input: validInput,
			setupMocks: func(mRepo *repoMocks.MockPropertyRepository, mUsers *repoMocks.MockUserRepository) {
				mRepo.On("Create", ctx, mock.MatchedBy(func(p *model.Property) bool {
					return p.ID == "" &&
						p.Title == "Sea View Flat" &&
						p.Status == model.PropertyStatusAvailable &&
						p.Address.Country == "India" &&
						p.Features.AreaUnit == "sqft" &&
						p.OwnerID == seller.ID && p.AgentID == "" &&
						p.Amenities != nil && p.Media != nil
				})).Return(storedListing("p1"), nil)
				mUsers.On("FindSummaries", ctx, []string{seller.ID}).Return(known(seller), nil)
			},
		},
		{
			name:  "agent is assigned to own listing",
			actor: agent,
			input: validInput,
			setupMocks: func(mRepo *repoMocks.MockPropertyRepository, mUsers *repoMocks.MockUserRepository) {
				p := storedListing("p2")
				p.OwnerID, p.AgentID = agent.ID, agent.ID
				mRepo.On("Create", ctx, mock.MatchedBy(func(p *model.Property) bool {
					return p.OwnerID == agent.ID && p.AgentID == agent.ID
				})).Return(p, nil)
				mUsers.On("FindSummaries", ctx, []string{agent.ID}).Return(known(agent), nil)
			},
		},
		{
			name:  "seller names a known agent",
			actor: seller,
			input: func() CreatePropertyInput {
				in := validInput()
				in.AgentID = agent.ID
				return in
			},
			setupMocks: func(mRepo *repoMocks.MockPropertyRepository, mUsers *repoMocks.MockUserRepository) {
				p := storedListing("p4")
				p.AgentID = agent.ID
				mUsers.On("FindSummaries", ctx, []string{seller.ID, agent.ID}).Return(known(seller, agent), nil)
				mRepo.On("Create", ctx, mock.MatchedBy(func(p *model.Property) bool {
					return p.OwnerID == seller.ID && p.AgentID == agent.ID
				})).Return(p, nil)
			},
		},
		{
			name:  "unknown agent",
			actor: seller,
			input: func() CreatePropertyInput {
				in := validInput()
				in.AgentID = "3f0c2a5e-0000-4000-8000-000000000000"
				return in
			},
			setupMocks: func(mRepo *repoMocks.MockPropertyRepository, mUsers *repoMocks.MockUserRepository) {
				mUsers.On("FindSummaries", ctx, []string{seller.ID, "3f0c2a5e-0000-4000-8000-000000000000"}).Return(known(seller), nil)
			},
			wantField: "agentId",
		},
		{
			name:  "malformed agent id",
			actor: seller,
			input: func() CreatePropertyInput {
				in := validInput()
				in.AgentID = "not-an-id"
				return in
			},
			setupMocks: func(mRepo *repoMocks.MockPropertyRepository, mUsers *repoMocks.MockUserRepository) {
				mUsers.On("FindSummaries", ctx, []string{seller.ID, "not-an-id"}).Return(known(seller), nil)
			},
			wantField: "agentId",
		},
		{
			name:  "caller without an account",
			actor: model.Actor{ID: "ghost", Role: model.RoleSeller},
			input: validInput,
			setupMocks: func(mRepo *repoMocks.MockPropertyRepository, mUsers *repoMocks.MockUserRepository) {
				mUsers.On("FindSummaries", ctx, []string{"ghost"}).Return(map[string]model.UserSummary{}, nil)
			},
			wantErr: ErrUnauthenticated,
		},
		{
			name:  "user lookup fails",
			actor: seller,
			input: validInput,
			setupMocks: func(mRepo *repoMocks.MockPropertyRepository, mUsers *repoMocks.MockUserRepository) {
				mUsers.On("FindSummaries", ctx, []string{seller.ID}).Return(nil, errors.New("db fail"))
			},
			wantErr: errors.New("resolve users: db fail"),
		},
		{
			name:       "anonymous",
			actor:      model.Actor{},
			input:      validInput,
			setupMocks: func(mRepo *repoMocks.MockPropertyRepository, mUsers *repoMocks.MockUserRepository) {},
			wantErr:    ErrUnauthenticated,
		},
		{
			name:       "buyer may not list",
			actor:      buyer,
			input:      validInput,
			setupMocks: func(mRepo *repoMocks.MockPropertyRepository, mUsers *repoMocks.MockUserRepository) {},
			wantErr:    ErrForbidden,
		},
		{
			name:  "missing title",
			actor: seller,
			input: func() CreatePropertyInput {
				in := validInput()
				in.Title = ""
				return in
			},
			setupMocks: func(mRepo *repoMocks.MockPropertyRepository, mUsers *repoMocks.MockUserRepository) {},
			wantField:  "title",
		},
		{
			name:  "nested address field",
			actor: seller,
			input: func() CreatePropertyInput {
				in := validInput()
				in.Address.ZipCode = ""
				return in
			},
			setupMocks: func(mRepo *repoMocks.MockPropertyRepository, mUsers *repoMocks.MockUserRepository) {},
			wantField:  "address.zipCode",
		},
		{
			name:  "latitude out of range",
			actor: seller,
			input: func() CreatePropertyInput {
				in := validInput()
				in.Location = model.NewGeoPoint(76.26, 91)
				return in
			},
			setupMocks: func(mRepo *repoMocks.MockPropertyRepository, mUsers *repoMocks.MockUserRepository) {},
			wantField:  "location.coordinates",
		},
		{
			name:  "land requires land type",
			actor: seller,
			input: func() CreatePropertyInput {
				in := validInput()
				in.PropertyType = model.PropertyTypeLand
				return in
			},
			setupMocks: func(mRepo *repoMocks.MockPropertyRepository, mUsers *repoMocks.MockUserRepository) {},
			wantField:  "features.landType",
		},
		{
			name:  "land with land type",
			actor: admin,
			input: func() CreatePropertyInput {
				in := validInput()
				in.PropertyType = model.PropertyTypeLand
				in.Features.LandType = &land
				return in
			},
			setupMocks: func(mRepo *repoMocks.MockPropertyRepository, mUsers *repoMocks.MockUserRepository) {
				p := storedListing("p3")
				p.OwnerID = admin.ID
				mRepo.On("Create", ctx, mock.Anything).Return(p, nil)
				mUsers.On("FindSummaries", ctx, []string{admin.ID}).Return(known(admin), nil)
			},
		},
		{
			name:  "repository error",
			actor: seller,
			input: validInput,
			setupMocks: func(mRepo *repoMocks.MockPropertyRepository, mUsers *repoMocks.MockUserRepository) {
				mUsers.On("FindSummaries", ctx, []string{seller.ID}).Return(known(seller), nil)
				mRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db fail"))
			},
			wantErr: errors.New("create property: db fail"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockPropertyRepository)
			mUsers := new(repoMocks.MockUserRepository)
			svc := NewPropertyService(mRepo, mUsers, nil, search.DefaultDefaults, nil, zap.NewNop())

			tt.setupMocks(mRepo, mUsers)

			p, err := svc.Create(ctx, tt.actor, tt.input())

			switch {
			case tt.wantField != "":
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.wantField, verr.Field)
			case tt.wantErr != nil:
				if errors.Is(tt.wantErr, ErrUnauthenticated) || errors.Is(tt.wantErr, ErrForbidden) {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.EqualError(t, err, tt.wantErr.Error())
				}
				assert.Nil(t, p)
			default:
				require.NoError(t, err)
				assert.NotEmpty(t, p.ID)
			}
			mRepo.AssertExpectations(t)
			mUsers.AssertExpectations(t)
		})
	}
}

func TestPropertyService_Update(t *testing.T) {
	ctx := context.Background()
	newPrice := 4200000.0
	negative := -1.0
	sold := model.PropertyStatusSold
	agentID := agent.ID
	malformedAgent := "not-an-id"

	tests := []struct {
		name       string
		actor      model.Actor
		input      UpdatePropertyInput
		setupMocks func(mRepo *repoMocks.MockPropertyRepository, mUsers *repoMocks.MockUserRepository)
		wantErr    error
		wantField  string
	}{
		{
			name:  "owner updates price and status",
			actor: seller,
			input: UpdatePropertyInput{Price: &newPrice, Status: &sold},
			setupMocks: func(mRepo *repoMocks.MockPropertyRepository, mUsers *repoMocks.MockUserRepository) {
				mRepo.On("FindByID", ctx, "p1").Return(storedListing("p1"), nil)
				mRepo.On("Update", ctx, mock.MatchedBy(func(p *model.Property) bool {
					return p.Price == newPrice && p.Status == sold && p.Title == "Sea View Flat" && !p.UpdatedAt.IsZero()
				})).Return(storedListing("p1"), nil)
				mUsers.On("FindSummaries", ctx, []string{seller.ID}).Return(map[string]model.UserSummary{}, nil)
			},
		},
		{
			name:  "assigned agent",
			actor: agent,
			input: UpdatePropertyInput{Price: &newPrice},
			setupMocks: func(mRepo *repoMocks.MockPropertyRepository, mUsers *repoMocks.MockUserRepository) {
				p := storedListing("p1")
				p.AgentID = agent.ID
				mRepo.On("FindByID", ctx, "p1").Return(p, nil)
				mRepo.On("Update", ctx, mock.Anything).Return(p, nil)
				mUsers.On("FindSummaries", ctx, []string{seller.ID, agent.ID}).Return(map[string]model.UserSummary{}, nil)
			},
		},
		{
			name:  "stranger",
			actor: model.Actor{ID: "seller-2", Role: model.RoleSeller},
			input: UpdatePropertyInput{Price: &newPrice},
			setupMocks: func(mRepo *repoMocks.MockPropertyRepository, mUsers *repoMocks.MockUserRepository) {
				mRepo.On("FindByID", ctx, "p1").Return(storedListing("p1"), nil)
			},
			wantErr: ErrForbidden,
		},
		{
			name:  "merged listing is revalidated",
			actor: seller,
			input: UpdatePropertyInput{Price: &negative},
			setupMocks: func(mRepo *repoMocks.MockPropertyRepository, mUsers *repoMocks.MockUserRepository) {
				mRepo.On("FindByID", ctx, "p1").Return(storedListing("p1"), nil)
			},
			wantField: "price",
		},
		{
			name:  "owner assigns a known agent",
			actor: seller,
			input: UpdatePropertyInput{AgentID: &agentID},
			setupMocks: func(mRepo *repoMocks.MockPropertyRepository, mUsers *repoMocks.MockUserRepository) {
				p := storedListing("p1")
				p.AgentID = agent.ID
				mRepo.On("FindByID", ctx, "p1").Return(storedListing("p1"), nil)
				mUsers.On("FindSummaries", ctx, []string{agent.ID}).Return(known(agent), nil)
				mRepo.On("Update", ctx, mock.MatchedBy(func(p *model.Property) bool {
					return p.AgentID == agent.ID
				})).Return(p, nil)
				mUsers.On("FindSummaries", ctx, []string{seller.ID, agent.ID}).Return(known(seller, agent), nil)
			},
		},
		{
			name:  "owner assigns an unknown agent",
			actor: seller,
			input: UpdatePropertyInput{AgentID: &malformedAgent},
			setupMocks: func(mRepo *repoMocks.MockPropertyRepository, mUsers *repoMocks.MockUserRepository) {
				mRepo.On("FindByID", ctx, "p1").Return(storedListing("p1"), nil)
				mUsers.On("FindSummaries", ctx, []string{malformedAgent}).Return(map[string]model.UserSummary{}, nil)
			},
			wantField: "agentId",
		},
		{
			name:  "vanished between read and write",
			actor: admin,
			input: UpdatePropertyInput{Price: &newPrice},
			setupMocks: func(mRepo *repoMocks.MockPropertyRepository, mUsers *repoMocks.MockUserRepository) {
				mRepo.On("FindByID", ctx, "p1").Return(storedListing("p1"), nil)
				mRepo.On("Update", ctx, mock.Anything).Return(nil, repository.ErrNotFound)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockPropertyRepository)
			mUsers := new(repoMocks.MockUserRepository)
			svc := NewPropertyService(mRepo, mUsers, nil, search.DefaultDefaults, nil, zap.NewNop())

			tt.setupMocks(mRepo, mUsers)

			_, err := svc.Update(ctx, tt.actor, "p1", tt.input)

			switch {
			case tt.wantField != "":
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.wantField, verr.Field)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				assert.NoError(t, err)
			}
			mRepo.AssertExpectations(t)
			mUsers.AssertExpectations(t)
		})
	}
}

func TestPropertyService_Delete(t *testing.T) {
	ctx := context.Background()

	withMedia := func() *model.Property {
		p := storedListing("p1")
		p.Media = []model.Media{
			{URL: "http://cdn/a.jpg", PublicID: "properties/p1/a.jpg", ResourceType: model.MediaKindImage},
			{URL: "http://cdn/b.mp4", PublicID: "properties/p1/b.mp4", ResourceType: model.MediaKindVideo},
		}
		return p
	}

	t.Run("owner removes listing and media", func(t *testing.T) {
		mRepo := new(repoMocks.MockPropertyRepository)
		mStore := new(storeMocks.MockStorage)
		core, logs := observer.New(zapcore.WarnLevel)
		svc := NewPropertyService(mRepo, nil, mStore, search.DefaultDefaults, nil, zap.New(core))

		mRepo.On("FindByID", ctx, "p1").Return(withMedia(), nil)
		mRepo.On("Delete", ctx, "p1").Return(nil)
		mStore.On("Delete", ctx, "properties/p1/a.jpg").Return(nil)
		mStore.On("Delete", ctx, "properties/p1/b.mp4").Return(errors.New("storage fail"))

		err := svc.Delete(ctx, seller, "p1")

		assert.NoError(t, err)
		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, "media cleanup failed", entry.Message)
		assert.Equal(t, "properties/p1/b.mp4", entry.ContextMap()["key"])
		mRepo.AssertExpectations(t)
		mStore.AssertExpectations(t)
	})

	t.Run("assigned agent may not delete", func(t *testing.T) {
		mRepo := new(repoMocks.MockPropertyRepository)
		svc := NewPropertyService(mRepo, nil, nil, search.DefaultDefaults, nil, zap.NewNop())

		p := storedListing("p1")
		p.AgentID = agent.ID
		mRepo.On("FindByID", ctx, "p1").Return(p, nil)

		assert.ErrorIs(t, svc.Delete(ctx, agent, "p1"), ErrForbidden)
		mRepo.AssertExpectations(t)
	})

	t.Run("admin", func(t *testing.T) {
		mRepo := new(repoMocks.MockPropertyRepository)
		svc := NewPropertyService(mRepo, nil, nil, search.DefaultDefaults, nil, zap.NewNop())

		mRepo.On("FindByID", ctx, "p1").Return(storedListing("p1"), nil)
		mRepo.On("Delete", ctx, "p1").Return(nil)

		assert.NoError(t, svc.Delete(ctx, admin, "p1"))
		mRepo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		mRepo := new(repoMocks.MockPropertyRepository)
		svc := NewPropertyService(mRepo, nil, nil, search.DefaultDefaults, nil, zap.NewNop())

		mRepo.On("FindByID", ctx, "p1").Return(storedListing("p1"), nil)
		mRepo.On("Delete", ctx, "p1").Return(errors.New("db fail"))

		err := svc.Delete(ctx, seller, "p1")
		var se *StoreError
		assert.ErrorAs(t, err, &se)
		mRepo.AssertExpectations(t)
	})
}

func TestPropertyService_AddMedia(t *testing.T) {
	ctx := context.Background()
	keyOf := func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
		return storage.ObjectInfo{Key: key, Size: opt.Size, ContentType: opt.ContentType}
	}
	photo := func() Upload {
		return Upload{Filename: "Front.JPG", ContentType: "image/jpeg", Size: 5, Reader: strings.NewReader("hello")}
	}

	tests := []struct {
		name       string
		actor      model.Actor
		files      func() []Upload
		setupMocks func(mRepo *repoMocks.MockPropertyRepository, mUsers *repoMocks.MockUserRepository, mStore *storeMocks.MockStorage)
		wantErr    error
		wantErrMsg string
	}{
		{
			name:  "happy path",
			actor: seller,
			files: func() []Upload {
				return []Upload{photo(), {Filename: "tour.mp4", ContentType: "video/mp4", Size: 3, Reader: strings.NewReader("mp4")}}
			},
			setupMocks: func(mRepo *repoMocks.MockPropertyRepository, mUsers *repoMocks.MockUserRepository, mStore *storeMocks.MockStorage) {
				mRepo.On("FindByID", ctx, "p1").Return(storedListing("p1"), nil)
				mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
					return strings.HasPrefix(key, "properties/p1/") && strings.HasSuffix(key, ".jpg")
				}), mock.Anything, mock.MatchedBy(func(opt storage.PutObjectOptions) bool {
					return opt.ContentType == "image/jpeg" && opt.Metadata["original-filename"] == "Front.JPG"
				})).Return(keyOf, nil)
				mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
					return strings.HasSuffix(key, ".mp4")
				}), mock.Anything, mock.Anything).Return(keyOf, nil)
				mStore.On("URL", ctx, mock.Anything).Return("https://media.example.com/obj", nil)
				mRepo.On("AppendMedia", ctx, "p1", mock.MatchedBy(func(media []model.Media) bool {
					return len(media) == 2 &&
						media[0].ResourceType == model.MediaKindImage &&
						media[1].ResourceType == model.MediaKindVideo &&
						media[0].URL == "https://media.example.com/obj"
				})).Return(nil)
				mUsers.On("FindSummaries", ctx, []string{seller.ID}).Return(map[string]model.UserSummary{}, nil)
			},
		},
		{
			name:  "no files",
			actor: seller,
			files: func() []Upload { return nil },
			setupMocks: func(mRepo *repoMocks.MockPropertyRepository, mUsers *repoMocks.MockUserRepository, mStore *storeMocks.MockStorage) {
			},
			wantErrMsg: "files: at least one file is required",
		},
		{
			name:  "too many files",
			actor: seller,
			files: func() []Upload {
				out := make([]Upload, MaxUploads+1)
				for i := range out {
					out[i] = photo()
				}
				return out
			},
			setupMocks: func(mRepo *repoMocks.MockPropertyRepository, mUsers *repoMocks.MockUserRepository, mStore *storeMocks.MockStorage) {
			},
			wantErrMsg: "files: at most 10 files per upload",
		},
		{
			name:  "unsupported content type",
			actor: seller,
			files: func() []Upload {
				return []Upload{{Filename: "deed.pdf", ContentType: "application/pdf", Reader: strings.NewReader("%PDF")}}
			},
			setupMocks: func(mRepo *repoMocks.MockPropertyRepository, mUsers *repoMocks.MockUserRepository, mStore *storeMocks.MockStorage) {
			},
			wantErrMsg: `files: file "deed.pdf" must be an image or a video`,
		},
		{
			name:  "buyer",
			actor: buyer,
			files: func() []Upload { return []Upload{photo()} },
			setupMocks: func(mRepo *repoMocks.MockPropertyRepository, mUsers *repoMocks.MockUserRepository, mStore *storeMocks.MockStorage) {
				mRepo.On("FindByID", ctx, "p1").Return(storedListing("p1"), nil)
			},
			wantErr: ErrForbidden,
		},
		{
			name:  "storage unavailable",
			actor: seller,
			files: func() []Upload { return []Upload{photo()} },
			setupMocks: func(mRepo *repoMocks.MockPropertyRepository, mUsers *repoMocks.MockUserRepository, mStore *storeMocks.MockStorage) {
				mRepo.On("FindByID", ctx, "p1").Return(storedListing("p1"), nil)
				mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
					Return(storage.ObjectInfo{}, storage.ErrUnavailable)
			},
			wantErr: storage.ErrUnavailable,
		},
		{
			name:  "append failure rolls back stored objects",
			actor: seller,
			files: func() []Upload { return []Upload{photo()} },
			setupMocks: func(mRepo *repoMocks.MockPropertyRepository, mUsers *repoMocks.MockUserRepository, mStore *storeMocks.MockStorage) {
				mRepo.On("FindByID", ctx, "p1").Return(storedListing("p1"), nil)
				mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).Return(keyOf, nil)
				mStore.On("URL", ctx, mock.Anything).Return("https://media.example.com/obj", nil)
				mRepo.On("AppendMedia", ctx, "p1", mock.Anything).Return(errors.New("db fail"))
				mStore.On("Delete", ctx, mock.MatchedBy(func(key string) bool {
					return strings.HasPrefix(key, "properties/p1/")
				})).Return(nil).Once()
			},
			wantErrMsg: "append media: db fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockPropertyRepository)
			mUsers := new(repoMocks.MockUserRepository)
			mStore := new(storeMocks.MockStorage)
			svc := NewPropertyService(mRepo, mUsers, mStore, search.DefaultDefaults, nil, zap.NewNop())

			tt.setupMocks(mRepo, mUsers, mStore)

			p, err := svc.AddMedia(ctx, tt.actor, "p1", tt.files())

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantErrMsg != "":
				assert.EqualError(t, err, tt.wantErrMsg)
			default:
				require.NoError(t, err)
				assert.Equal(t, "p1", p.ID)
			}
			mRepo.AssertExpectations(t)
			mUsers.AssertExpectations(t)
			mStore.AssertExpectations(t)
		})
	}
}
