package api

// Package api contains thin typed clients for the remote REST API, one
// per resource. Clients translate parameters and payloads; all failure
// handling lives in the gateway.

import (
	"net/url"
	"strconv"

	domainauth "github.com/Mohamed-Esmat/fms-upskilling-guide/internal/domain/auth"
)

// Default paging applied when the caller leaves the fields zero.
const (
	DefaultPageSize   = 10
	DefaultPageNumber = 1
)

// Paginated is the list envelope returned by every paginated endpoint.
type Paginated[T any] struct {
	Data                 []T `json:"data"`
	PageNumber           int `json:"pageNumber"`
	PageSize             int `json:"pageSize"`
	TotalNumberOfRecords int `json:"totalNumberOfRecords"`
	TotalNumberOfPages   int `json:"totalNumberOfPages"`
}

// DeleteResult is the envelope returned by delete endpoints.
type DeleteResult struct {
	Raw      []any `json:"raw"`
	Affected int   `json:"affected"`
}

// MessageResult is the envelope returned by endpoints that only
// acknowledge.
type MessageResult struct {
	Message string `json:"message"`
}

// Tag is a recipe tag.
type Tag struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	CreationDate     string `json:"creationDate,omitempty"`
	ModificationDate string `json:"modificationDate,omitempty"`
}

// Category is a recipe category.
type Category struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	CreationDate     string `json:"creationDate,omitempty"`
	ModificationDate string `json:"modificationDate,omitempty"`
}

// Recipe is a catalog entry.
type Recipe struct {
	ID               int        `json:"id"`
	Name             string     `json:"name"`
	ImagePath        string     `json:"imagePath,omitempty"`
	Description      string     `json:"description"`
	Price            float64    `json:"price"`
	Tag              Tag        `json:"tag"`
	Category         []Category `json:"category"`
	CreationDate     string     `json:"creationDate,omitempty"`
	ModificationDate string     `json:"modificationDate,omitempty"`
}

// CategoryWithRecipes is the category detail shape, which embeds the
// category's recipes.
type CategoryWithRecipes struct {
	Category
	Recipe []Recipe `json:"recipe"`
}

// Favorite is a per-user favorites entry.
type Favorite struct {
	ID           int    `json:"id"`
	Recipe       Recipe `json:"recipe"`
	CreationDate string `json:"creationDate,omitempty"`
}

// User re-exports the domain identity record for API consumers.
type User = domainauth.User

// pageValues seeds url.Values with defaulted paging.
func pageValues(pageSize, pageNumber int) url.Values {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageNumber <= 0 {
		pageNumber = DefaultPageNumber
	}
	v := url.Values{}
	v.Set("pageSize", strconv.Itoa(pageSize))
	v.Set("pageNumber", strconv.Itoa(pageNumber))
	return v
}
