package rest

import (
	"net/http"
	"strconv"
)

const maxPerPage = 100

// PageMeta describes one page of a listing.
type PageMeta struct {
	Page     int `json:"page"`
	PerPage  int `json:"per_page"`
	Total    int `json:"total"`
	LastPage int `json:"last_page"`
}

// ListEnvelope is the response shape of every listing endpoint.
// Cities is the distinct city set of the base listing, used to
// populate the city filter control.
type ListEnvelope struct {
	Data    any      `json:"data"`
	Meta    PageMeta `json:"meta"`
	Cities  []string `json:"cities"`
	Filters any      `json:"filters"`
}

// ParsePage reads page/per_page query params with sane bounds.
func ParsePage(r *http.Request, defaultPerPage int) (page, perPage int) {
	page = 1
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = v
	}
	perPage = defaultPerPage
	if v, err := strconv.Atoi(r.URL.Query().Get("per_page")); err == nil && v > 0 {
		perPage = v
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}

// NewPageMeta computes paging metadata for a listing of total rows.
func NewPageMeta(page, perPage, total int) PageMeta {
	lastPage := (total + perPage - 1) / perPage
	if lastPage < 1 {
		lastPage = 1
	}
	return PageMeta{Page: page, PerPage: perPage, Total: total, LastPage: lastPage}
}
