package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/core/catalog"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/core/domain"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/logger"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/ports"
)

// Admin tabs
const (
	TabAdd       = "add"
	TabList      = "list"
	TabAnalytics = "analytics"
)

const (
	msgAdded   = "Product added successfully"
	msgUpdated = "Product updated successfully"
	msgDeleted = "Product deleted"
)

// ProductRow is one line of the admin product table
type ProductRow struct {
	Number   int
	ID       string
	Title    string
	Category string
	Price    string
	Clicks   int64
	Active   string
}

// AdminView is the admin panel. Confirm is set while a delete awaits
// confirmation.
type AdminView struct {
	Page
	Tab        string
	Form       catalog.ProductForm
	FieldError string
	Alert      string
	Rows       []ProductRow
	Analytics  domain.Analytics
	Pie        catalog.Pie
	Confirm    *ProductRow
}

type AdminHandler struct {
	service  ports.AdminService
	sessions *SessionStore
	renderer *Renderer
	toast    time.Duration
	log      zerolog.Logger
}

func NewAdminHandler(service ports.AdminService, sessions *SessionStore, renderer *Renderer, toast time.Duration) *AdminHandler {
	return &AdminHandler{
		service:  service,
		sessions: sessions,
		renderer: renderer,
		toast:    toast,
		log:      logger.Component("admin"),
	}
}

// Dashboard renders the tab chosen by ?tab= with a fresh admin list
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	view := h.newView(w, r, parseTab(r.URL.Query().Get("tab")))
	view.Form = catalog.NewProductForm()
	h.load(r, &view)
	h.renderer.Render(w, http.StatusOK, "admin.html", view)
}

// Create submits the form in create mode
func (h *AdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	h.save(w, r, "")
}

// Update submits the form for an existing product
func (h *AdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	h.save(w, r, r.PathValue("id"))
}

func (h *AdminHandler) save(w http.ResponseWriter, r *http.Request, id string) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	form := formFromRequest(r)
	form.EditingID = id
	session := SessionFromContext(r.Context())

	err := h.service.SaveProduct(r.Context(), session, form)
	if err == nil {
		message := msgAdded
		if form.Editing() {
			message = msgUpdated
		}
		h.sessions.SetFlash(w, message)
		http.Redirect(w, r, "/admin?tab="+TabAdd, http.StatusSeeOther)
		return
	}

	// The form stays populated so nothing typed is lost.
	view := h.newView(w, r, TabAdd)
	view.Form = form
	status := http.StatusBadGateway

	var verr *catalog.ValidationError
	if errors.As(err, &verr) {
		view.FieldError = verr.Message
		status = http.StatusUnprocessableEntity
	} else {
		h.log.Error().Err(err).Str("product_id", id).Msg("save product")
		view.Alert = domain.UserMessage(err)
	}
	h.renderer.Render(w, status, "admin.html", view)
}

// Edit loads a product into the form and switches to the form tab
func (h *AdminHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	session := SessionFromContext(r.Context())

	product, err := h.service.FindProduct(r.Context(), session, id)
	if errors.Is(err, domain.ErrNotFound) {
		http.Redirect(w, r, "/admin?tab="+TabList, http.StatusSeeOther)
		return
	}

	view := h.newView(w, r, TabAdd)
	view.Form = catalog.NewProductForm()
	if err != nil {
		h.log.Error().Err(err).Str("product_id", id).Msg("load product for edit")
		view.Alert = domain.UserMessage(err)
		h.renderer.Render(w, http.StatusBadGateway, "admin.html", view)
		return
	}

	view.Form = catalog.FormFromProduct(*product)
	h.renderer.Render(w, http.StatusOK, "admin.html", view)
}

// ConfirmDelete asks before deleting
func (h *AdminHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	view := h.newView(w, r, TabList)
	view.Form = catalog.NewProductForm()
	h.load(r, &view)
	for i := range view.Rows {
		if view.Rows[i].ID == id {
			row := view.Rows[i]
			view.Confirm = &row
			break
		}
	}
	if view.Confirm == nil && view.Alert == "" {
		http.Redirect(w, r, "/admin?tab="+TabList, http.StatusSeeOther)
		return
	}
	h.renderer.Render(w, http.StatusOK, "admin.html", view)
}

// Delete removes the product, then the list is reloaded
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	session := SessionFromContext(r.Context())

	if err := h.service.DeleteProduct(r.Context(), session, id); err != nil {
		h.log.Error().Err(err).Str("product_id", id).Msg("delete product")
		view := h.newView(w, r, TabList)
		view.Form = catalog.NewProductForm()
		h.load(r, &view)
		view.Alert = domain.UserMessage(err)
		h.renderer.Render(w, http.StatusBadGateway, "admin.html", view)
		return
	}

	h.sessions.SetFlash(w, msgDeleted)
	http.Redirect(w, r, "/admin?tab="+TabList, http.StatusSeeOther)
}

func (h *AdminHandler) newView(w http.ResponseWriter, r *http.Request, tab string) AdminView {
	return AdminView{
		Page: Page{
			Title:   "Admin Panel",
			Toast:   h.sessions.PopFlash(w, r),
			ToastMS: h.toast.Milliseconds(),
		},
		Tab: tab,
	}
}

// load fills the table and analytics from the authoritative admin list.
func (h *AdminHandler) load(r *http.Request, view *AdminView) {
	snapshot, err := h.service.ListProducts(r.Context(), SessionFromContext(r.Context()))
	if err != nil {
		h.log.Error().Err(err).Msg("load admin products")
		view.Alert = domain.UserMessage(err)
	}

	view.Rows = productRows(snapshot.Products())
	view.Analytics = h.service.Analytics(snapshot)
	view.Pie = catalog.PieChart(view.Analytics.PerCategory)
}

func parseTab(tab string) string {
	switch tab {
	case TabList, TabAnalytics:
		return tab
	}
	return TabAdd
}

func formFromRequest(r *http.Request) catalog.ProductForm {
	return catalog.ProductForm{
		Title:        r.PostFormValue("title"),
		Description:  r.PostFormValue("description"),
		ImageURL:     r.PostFormValue("imageUrl"),
		AffiliateURL: r.PostFormValue("affiliateUrl"),
		Category:     r.PostFormValue("category"),
		Price:        r.PostFormValue("price"),
		IsActive:     r.PostFormValue("isActive") != "",
	}
}

func productRows(products []domain.Product) []ProductRow {
	rows := make([]ProductRow, 0, len(products))
	for i, p := range products {
		row := ProductRow{
			Number:   i + 1,
			ID:       p.ID,
			Title:    p.Title,
			Category: "-",
			Price:    "-",
			Clicks:   p.Clicks,
			Active:   "No",
		}
		if p.Category != "" {
			row.Category = p.Category
		}
		if p.Price != nil {
			row.Price = "$" + catalog.FormatPrice(p.Price)
		}
		if p.IsActive {
			row.Active = "Yes"
		}
		rows = append(rows, row)
	}
	return rows
}
