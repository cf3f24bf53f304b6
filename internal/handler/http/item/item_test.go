package item_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mig-catalog/internal/common/pagination"
	"mig-catalog/internal/domain/entity"
	"mig-catalog/internal/handler/http/item"
	"mig-catalog/internal/repository"
	itemUC "mig-catalog/internal/usecase/item"
)

const itemID = "aeb21405-5e9f-4e9f-9c8e-2f7a3b8f1d4c"

type stubService struct {
	item    *entity.Item
	listRes *itemUC.PaginatedResult
	cats    []string
	err     error

	lastFilters repository.ItemFilters
	lastParams  pagination.Params
	lastCreate  itemUC.CreateInput
	lastUpdate  itemUC.UpdateInput
	deletedID   string
}

func (s *stubService) Get(_ context.Context, _ string) (*entity.Item, error) {
	return s.item, s.err
}

func (s *stubService) ListPaginated(_ context.Context, filters repository.ItemFilters, params pagination.Params) (*itemUC.PaginatedResult, error) {
	s.lastFilters = filters
	s.lastParams = params
	return s.listRes, s.err
}

func (s *stubService) Categories(_ context.Context) ([]string, error) {
	return s.cats, s.err
}

func (s *stubService) Create(_ context.Context, in itemUC.CreateInput) (*entity.Item, error) {
	s.lastCreate = in
	return s.item, s.err
}

func (s *stubService) Update(_ context.Context, in itemUC.UpdateInput) (*entity.Item, error) {
	s.lastUpdate = in
	return s.item, s.err
}

func (s *stubService) Delete(_ context.Context, id string) error {
	s.deletedID = id
	return s.err
}

func testItem() *entity.Item {
	return &entity.Item{
		ID:       itemID,
		Name:     "Wireless Mouse",
		Price:    29.99,
		Category: "electronics",
	}
}

func TestListHandler_Success(t *testing.T) {
	stub := &stubService{listRes: &itemUC.PaginatedResult{
		Data:  []*entity.Item{testItem()},
		Total: 1,
	}}
	handler := item.ListHandler{Svc: stub, PaginationCfg: pagination.DefaultConfig()}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/items?page=2&size=5", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d (body: %s)", rr.Code, http.StatusOK, rr.Body.String())
	}
	if stub.lastParams.Page != 2 || stub.lastParams.Size != 5 {
		t.Errorf("params = %+v, want page 2 size 5", stub.lastParams)
	}

	var resp struct {
		Items []item.DTO `json:"items"`
		Total int64      `json:"total"`
		Page  int        `json:"page"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].Name != "Wireless Mouse" {
		t.Errorf("items = %+v, want one wireless mouse", resp.Items)
	}
	if resp.Total != 1 {
		t.Errorf("total = %d, want 1", resp.Total)
	}
}

func TestListHandler_Filters(t *testing.T) {
	stub := &stubService{listRes: &itemUC.PaginatedResult{}}
	handler := item.ListHandler{Svc: stub, PaginationCfg: pagination.DefaultConfig()}

	url := "/api/v1/items?category=electronics&category=office&search=mouse&min_price=10&max_price=50&sort=price_asc"
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
	}

	f := stub.lastFilters
	if len(f.Categories) != 2 || f.Categories[0] != "electronics" || f.Categories[1] != "office" {
		t.Errorf("categories = %v, want [electronics office]", f.Categories)
	}
	if f.Search != "mouse" {
		t.Errorf("search = %q, want %q", f.Search, "mouse")
	}
	if f.MinPrice == nil || *f.MinPrice != 10 {
		t.Errorf("min price = %v, want 10", f.MinPrice)
	}
	if f.MaxPrice == nil || *f.MaxPrice != 50 {
		t.Errorf("max price = %v, want 50", f.MaxPrice)
	}
	if f.Sort != "price_asc" {
		t.Errorf("sort = %q, want %q", f.Sort, "price_asc")
	}
}

func TestListHandler_InvalidFilters(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "bad sort", url: "/api/v1/items?sort=alphabetical"},
		{name: "negative min price", url: "/api/v1/items?min_price=-5"},
		{name: "non numeric max price", url: "/api/v1/items?max_price=cheap"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := item.ListHandler{Svc: &stubService{}, PaginationCfg: pagination.DefaultConfig()}

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestGetHandler(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		item     *entity.Item
		err      error
		wantCode int
	}{
		{name: "found", path: "/api/v1/items/" + itemID, item: testItem(), wantCode: http.StatusOK},
		{name: "not found", path: "/api/v1/items/" + itemID, err: itemUC.ErrItemNotFound, wantCode: http.StatusNotFound},
		{name: "invalid uuid", path: "/api/v1/items/not-a-uuid", wantCode: http.StatusBadRequest},
		{name: "repository error", path: "/api/v1/items/" + itemID, err: errors.New("connection refused"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := item.GetHandler{Svc: &stubService{item: tt.item, err: tt.err}}

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != tt.wantCode {
				t.Fatalf("status code = %d, want %d (body: %s)", rr.Code, tt.wantCode, rr.Body.String())
			}
		})
	}
}

func TestCreateHandler_Success(t *testing.T) {
	stub := &stubService{item: testItem()}
	handler := item.CreateHandler{Svc: stub}

	body := `{"name": "Wireless Mouse", "description": "2.4GHz", "price": 29.99, "category": "electronics"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/items", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusCreated)
	}
	if stub.lastCreate.Name != "Wireless Mouse" || stub.lastCreate.Price != 29.99 {
		t.Errorf("create input = %+v", stub.lastCreate)
	}
}

func TestCreateHandler_ValidationError(t *testing.T) {
	handler := item.CreateHandler{Svc: &stubService{err: entity.ErrNegativePrice}}

	body := `{"name": "Wireless Mouse", "price": -1}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/items", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestCreateHandler_StorageFailure(t *testing.T) {
	// DB障害はバリデーションエラーではなく500として返す
	handler := item.CreateHandler{Svc: &stubService{err: errors.New("connection refused")}}

	body := `{"name": "Wireless Mouse", "price": 29.99}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/items", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	if !strings.Contains(rr.Body.String(), "internal server error") {
		t.Errorf("body = %s, want masked message", rr.Body.String())
	}
}

func TestUpdateHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "updated", wantCode: http.StatusOK},
		{name: "not found", err: itemUC.ErrItemNotFound, wantCode: http.StatusNotFound},
		{name: "validation error", err: entity.ErrNegativePrice, wantCode: http.StatusBadRequest},
		{name: "storage failure", err: errors.New("connection refused"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubService{item: testItem(), err: tt.err}
			handler := item.UpdateHandler{Svc: stub}

			body := `{"price": 19.99}`
			req := httptest.NewRequest(http.MethodPut, "/api/v1/items/"+itemID, strings.NewReader(body))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != tt.wantCode {
				t.Fatalf("status code = %d, want %d", rr.Code, tt.wantCode)
			}
			if tt.err == nil {
				if stub.lastUpdate.Price == nil || *stub.lastUpdate.Price != 19.99 {
					t.Errorf("update input = %+v, want price 19.99", stub.lastUpdate)
				}
				if stub.lastUpdate.Name != nil {
					t.Errorf("name should stay nil when omitted, got %v", *stub.lastUpdate.Name)
				}
			}
		})
	}
}

func TestDeleteHandler(t *testing.T) {
	stub := &stubService{}
	handler := item.DeleteHandler{Svc: stub}

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/items/"+itemID, nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusNoContent)
	}
	if stub.deletedID != itemID {
		t.Errorf("deleted ID = %q, want %q", stub.deletedID, itemID)
	}
}

func TestCategoriesHandler(t *testing.T) {
	handler := item.CategoriesHandler{Svc: &stubService{cats: []string{"electronics", "office"}}}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/items/categories", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
	}

	var resp map[string][]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp["categories"]) != 2 {
		t.Errorf("categories = %v, want two entries", resp["categories"])
	}
}
