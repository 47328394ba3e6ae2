package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/core/banner"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/core/catalog"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/core/domain"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/logger"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/ports"
)

const noMatchesMessage = "No products found. Try a different category or search."

// HomeView is the public storefront page
type HomeView struct {
	Page
	Slides     []banner.Slide
	Slide      banner.Slide
	SlideIndex int
	IntervalMS int64
	Categories []string
	Cards      []catalog.Card
	Count      string
	Error      string
	Empty      string
}

type HTTPHandler struct {
	service  ports.StorefrontService
	rotator  *banner.Rotator
	renderer *Renderer
	sessions *SessionStore
	log      zerolog.Logger
}

func NewHTTPHandler(service ports.StorefrontService, rotator *banner.Rotator, renderer *Renderer, sessions *SessionStore) *HTTPHandler {
	return &HTTPHandler{
		service:  service,
		rotator:  rotator,
		renderer: renderer,
		sessions: sessions,
		log:      logger.Component("storefront"),
	}
}

// Home renders the catalog, filtered by ?category= and ?q=
func (h *HTTPHandler) Home(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	category := query.Get("category")
	if category == "" {
		category = catalog.AllCategories
	}
	term := query.Get("q")

	view := HomeView{
		Page: Page{
			Title:         "Affiliate Deals",
			Search:        term,
			Category:      category,
			Authenticated: h.sessions.Load(r).Authenticated(),
		},
	}
	h.applyBanner(&view, query.Get("slide"))

	products, err := h.service.LoadCatalog(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("load catalog")
		view.Error = domain.UserMessage(err)
	}

	// Categories come from the full list so the selector never shrinks
	// while a filter is applied.
	view.Categories = catalog.Categories(products)
	visible := catalog.Filter(products, category, term)
	view.Cards = catalog.NewCards(visible, h.service.RedirectURL)
	view.Count = countText(len(visible))
	if err == nil && len(visible) == 0 {
		view.Empty = noMatchesMessage
	}

	h.renderer.Render(w, http.StatusOK, "home.html", view)
}

// applyBanner shows the rotator's current slide. A valid ?slide= (a dot
// click) moves the rotator there first.
func (h *HTTPHandler) applyBanner(view *HomeView, raw string) {
	if h.rotator == nil {
		return
	}
	view.Slides = h.rotator.Slides()
	view.IntervalMS = h.rotator.Interval().Milliseconds()

	if raw != "" {
		if i, err := strconv.Atoi(raw); err == nil {
			if err := h.rotator.Jump(i); err != nil {
				h.log.Debug().Err(err).Msg("ignoring slide")
			}
		}
	}
	if slide, index, ok := h.rotator.Current(); ok {
		view.Slide, view.SlideIndex = slide, index
	}
}

func countText(n int) string {
	if n == 1 {
		return "1 item found"
	}
	return fmt.Sprintf("%d items found", n)
}
