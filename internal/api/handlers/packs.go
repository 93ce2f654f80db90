package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/pokepack/pokepack-tracker/pkg/pricing"
	domain "github.com/pokepack/pokepack-tracker/pkg/types"
)

// Catalog exposes the current pack snapshot to the API layer.
type Catalog interface {
	Packs() []domain.Pack
	Pack(id string) (domain.Pack, bool)
	Sets() []domain.Set
	Stats() domain.CatalogStats
	LastRefreshed() time.Time
}

// PacksHandler handles pack query endpoints.
type PacksHandler struct {
	catalog Catalog
}

// NewPacksHandler creates a new PacksHandler.
func NewPacksHandler(cat Catalog) *PacksHandler {
	return &PacksHandler{catalog: cat}
}

// PackView is a pack annotated with its reference price classification.
type PackView struct {
	domain.Pack
	ReferencePrice float64            `json:"reference_price"`
	PriceStatus    domain.PriceStatus `json:"price_status"`
	DiffPct        float64            `json:"diff_pct"`
}

// --- Input/Output types ---

// ListPacksInput is the input for listing packs with optional filters.
type ListPacksInput struct {
	Set         string `query:"set"          doc:"Filter by set ID"`
	Series      string `query:"series"       doc:"Filter by series name"`
	ProductType string `query:"product_type" doc:"Filter by product type" enum:"booster-pack,booster-box,etb,blister-3pack,blister-1pack,collection-box,premium-collection,ultra-premium,booster-bundle,build-battle-stadium,poster-collection,special-collection,"`
	PriceStatus string `query:"price_status" doc:"Filter by price status" enum:"great-deal,below-reference,at-reference,above-reference,overpriced,unknown,"`
	Q           string `query:"q"            doc:"Case-insensitive substring match on the pack name"`
}

// ListPacksOutput is the response for listing packs.
type ListPacksOutput struct {
	Body struct {
		Packs      []PackView `json:"packs"`
		Total      int        `json:"total"`
		IsRealData bool       `json:"is_real_data"`
	}
}

// GetPackInput is the input for getting a single pack.
type GetPackInput struct {
	ID string `path:"id" doc:"Pack ID"`
}

// GetPackOutput is the response for getting a single pack.
type GetPackOutput struct {
	Body PackView
}

// --- Handlers ---

// ListPacks returns the current pack snapshot, filtered and annotated
// with reference price classification.
func (h *PacksHandler) ListPacks(
	_ context.Context,
	input *ListPacksInput,
) (*ListPacksOutput, error) {
	packs := h.catalog.Packs()

	views := make([]PackView, 0, len(packs))
	realData := len(packs) > 0

	for i := range packs {
		p := &packs[i]
		if !p.IsRealData {
			realData = false
		}
		if input.Set != "" && p.SetID != input.Set {
			continue
		}
		if input.Series != "" && p.Series != input.Series {
			continue
		}
		if input.ProductType != "" && string(p.ProductType) != input.ProductType {
			continue
		}
		if input.Q != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(input.Q)) {
			continue
		}

		view := annotate(p)
		if input.PriceStatus != "" && string(view.PriceStatus) != input.PriceStatus {
			continue
		}
		views = append(views, view)
	}

	resp := &ListPacksOutput{}
	resp.Body.Packs = views
	resp.Body.Total = len(views)
	resp.Body.IsRealData = realData
	return resp, nil
}

// GetPack returns a single pack by ID.
func (h *PacksHandler) GetPack(
	_ context.Context,
	input *GetPackInput,
) (*GetPackOutput, error) {
	p, ok := h.catalog.Pack(input.ID)
	if !ok {
		return nil, huma.Error404NotFound("pack not found")
	}
	return &GetPackOutput{Body: annotate(&p)}, nil
}

func annotate(p *domain.Pack) PackView {
	view := PackView{
		Pack:        *p,
		PriceStatus: pricing.ClassifyPack(p),
	}
	if ref, ok := pricing.Reference(p.ProductType); ok {
		view.ReferencePrice = ref.MSRP
		if p.CurrentPrice > 0 {
			view.DiffPct = pricing.DiffPct(p.CurrentPrice, ref.MSRP)
		}
	}
	return view
}

// RegisterPackRoutes registers pack endpoints with the Huma API.
func RegisterPackRoutes(api huma.API, h *PacksHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-packs",
		Method:      http.MethodGet,
		Path:        "/api/v1/packs",
		Summary:     "List packs",
		Description: "Returns the current sealed-product snapshot with optional filters for set, series, product type, price status, and name.",
		Tags:        []string{"packs"},
	}, h.ListPacks)

	huma.Register(api, huma.Operation{
		OperationID: "get-pack",
		Method:      http.MethodGet,
		Path:        "/api/v1/packs/{id}",
		Summary:     "Get a pack by ID",
		Description: "Returns a single pack annotated with its reference price classification.",
		Tags:        []string{"packs"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetPack)
}
