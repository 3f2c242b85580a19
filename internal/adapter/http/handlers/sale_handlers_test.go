package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"lotes_backoffice/internal/adapter/http/handlers/mocks"
	"lotes_backoffice/internal/domain/entities"
	"lotes_backoffice/internal/usecase"
	"lotes_backoffice/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func TestParticipantHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *ParticipantHandler) *gin.Engine {
		r := gin.New()
		r.GET("/v1/sales/:sale_id", h.GetSale)
		r.GET("/v1/sales/:sale_id/participants/candidates", h.Candidates)
		r.PATCH("/v1/sales/:sale_id/participants", h.Assign)
		return r
	}

	t.Run("sale slots", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIParticipantAssignmentUseCase(ctrl)
		r := newRouter(NewParticipantHandler(uc))

		uc.EXPECT().Sale(gomock.Any(), "sale-1").Return(entities.Sale{ID: "sale-1", Liner: &entities.Participant{ID: "p1"}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/sales/sale-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Participants []struct {
				Type        string         `json:"type"`
				Field       string         `json:"field"`
				Participant map[string]any `json:"participant"`
			} `json:"participants"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body.Participants) != 7 || body.Participants[0].Field != "linerId" || body.Participants[0].Participant["id"] != "p1" {
			t.Fatalf("unexpected slots %+v", body.Participants)
		}
		if body.Participants[1].Participant != nil {
			t.Fatalf("expected empty slot, got %+v", body.Participants[1])
		}
	})

	t.Run("sale not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIParticipantAssignmentUseCase(ctrl)
		r := newRouter(NewParticipantHandler(uc))

		uc.EXPECT().Sale(gomock.Any(), "nope").Return(entities.Sale{}, usecase.ErrSaleNotFound)

		if w := doJSON(r, http.MethodGet, "/v1/sales/nope", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("candidates need a valid type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIParticipantAssignmentUseCase(ctrl)
		r := newRouter(NewParticipantHandler(uc))

		if w := doJSON(r, http.MethodGet, "/v1/sales/sale-1/participants/candidates?type=boss", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}

		uc.EXPECT().Candidates(gomock.Any(), "sale-1", entities.ParticipantTypeTelemarketer).Return([]usecase.Candidate{{Participant: entities.Participant{ID: "t1"}, Current: true}}, nil)
		w := doJSON(r, http.MethodGet, "/v1/sales/sale-1/participants/candidates?type=telemarketer", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["label"] != "Telemarketer" {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("assign outcomes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIParticipantAssignmentUseCase(ctrl)
		r := newRouter(NewParticipantHandler(uc))

		uc.EXPECT().Assign(gomock.Any(), "sale-1", entities.ParticipantTypeLiner, "p1").Return(usecase.AssignmentResult{Outcome: usecase.OutcomeInfo, Message: "ya asignado", Sale: entities.Sale{ID: "sale-1"}}, nil)
		uc.EXPECT().Assign(gomock.Any(), "sale-1", entities.ParticipantTypeLiner, "zz").Return(usecase.AssignmentResult{}, usecase.ErrParticipantNotCandidate)

		w := doJSON(r, http.MethodPatch, "/v1/sales/sale-1/participants", `{"participantType":"LINER","participantId":"p1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["outcome"] != "INFO" {
			t.Fatalf("unexpected body %v", body)
		}

		w = doJSON(r, http.MethodPatch, "/v1/sales/sale-1/participants", `{"participantType":"LINER","participantId":"zz"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}

		w = doJSON(r, http.MethodPatch, "/v1/sales/sale-1/participants", `{"participantType":"LINER"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestSalePaymentHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *SalePaymentHandler) *gin.Engine {
		r := gin.New()
		r.GET("/v1/sales/:sale_id/payments", h.List)
		r.GET("/v1/sales/:sale_id/payments/summary", h.Summary)
		r.POST("/v1/sales/:sale_id/payments/:payment_id/online", h.PayOnline)
		return r
	}

	t.Run("list with ticket sort", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISalePaymentUseCase(ctrl)
		r := newRouter(NewSalePaymentHandler(uc))

		uc.EXPECT().Payments(gomock.Any(), "sale-1", usecase.SortAsc).Return([]entities.Payment{{ID: "a", Amount: 10}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/sales/sale-1/payments?sort=ticket&direction=asc", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["sort"] != "asc" || body["nextSort"] != "desc" {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("list rejects unknown sort", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISalePaymentUseCase(ctrl)
		r := newRouter(NewSalePaymentHandler(uc))

		if w := doJSON(r, http.MethodGet, "/v1/sales/sale-1/payments?sort=amount", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if w := doJSON(r, http.MethodGet, "/v1/sales/sale-1/payments?sort=ticket&direction=up", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISalePaymentUseCase(ctrl)
		r := newRouter(NewSalePaymentHandler(uc))

		summary, err := usecase.SummarizePayments([]entities.Payment{{Amount: 100, Currency: entities.CurrencyPEN}})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		uc.EXPECT().Summary(gomock.Any(), "sale-1").Return(summary, nil)

		w := doJSON(r, http.MethodGet, "/v1/sales/sale-1/payments/summary", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["formattedTotal"] != "S/ 100.00" {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("summary of mixed currencies is a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISalePaymentUseCase(ctrl)
		r := newRouter(NewSalePaymentHandler(uc))

		uc.EXPECT().Summary(gomock.Any(), "sale-1").Return(usecase.PaymentSummary{}, usecase.ErrMixedCurrencies)

		w := doJSON(r, http.MethodGet, "/v1/sales/sale-1/payments/summary", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("pay online unwraps mp_payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISalePaymentUseCase(ctrl)
		r := newRouter(NewSalePaymentHandler(uc))

		uc.EXPECT().PayOnline(gomock.Any(), "sale-1", "pay-1", gomock.Any()).DoAndReturn(func(_ context.Context, _, _ string, payload json.RawMessage) (entities.Payment, error) {
			if string(payload) != `{"payment_method_id":"visa"}` {
				t.Fatalf("unexpected payload %s", payload)
			}
			return entities.Payment{ID: "pay-1", Status: entities.PaymentStatusCompleted}, nil
		})

		w := doJSON(r, http.MethodPost, "/v1/sales/sale-1/payments/pay-1/online", `{"mp_payload":{"payment_method_id":"visa"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("pay online error mapping", func(t *testing.T) {
		cases := []struct {
			err    error
			status int
		}{
			{usecase.ErrPaymentNotPending, http.StatusConflict},
			{usecase.ErrPaymentNotFound, http.StatusNotFound},
			{usecase.ErrPaymentCurrencyNotSupported, http.StatusUnprocessableEntity},
			{usecase.ErrPaymentGatewayUnauthorized, http.StatusBadGateway},
			{usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable},
			{usecase.ErrInvalidMPPayload, http.StatusBadRequest},
		}
		for _, tc := range cases {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockISalePaymentUseCase(ctrl)
			r := newRouter(NewSalePaymentHandler(uc))

			uc.EXPECT().PayOnline(gomock.Any(), "sale-1", "pay-1", gomock.Any()).Return(entities.Payment{}, tc.err)

			w := doJSON(r, http.MethodPost, "/v1/sales/sale-1/payments/pay-1/online", `{"payment_method_id":"visa"}`)
			if w.Code != tc.status {
				t.Fatalf("%v: expected %d, got %d", tc.err, tc.status, w.Code)
			}
			ctrl.Finish()
		}
	})

	t.Run("pay online invalid body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISalePaymentUseCase(ctrl)
		r := newRouter(NewSalePaymentHandler(uc))

		for _, body := range []string{"{", `{"mp_payload":null}`} {
			if w := doJSON(r, http.MethodPost, "/v1/sales/sale-1/payments/pay-1/online", body); w.Code != http.StatusBadRequest {
				t.Fatalf("%s: expected 400, got %d", body, w.Code)
			}
		}

		req := httptest.NewRequest(http.MethodPost, "/v1/sales/sale-1/payments/pay-1/online", nil)
		req.Body = failingReadCloser{}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestCatalogHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *CatalogHandler) *gin.Engine {
		r := gin.New()
		r.GET("/v1/catalog/projects", h.Projects)
		r.GET("/v1/catalog/projects/:project_id/lots", h.Lots)
		r.GET("/v1/catalog/leads", h.Leads)
		return r
	}

	t.Run("projects backend down", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newRouter(NewCatalogHandler(uc))

		uc.EXPECT().Projects(gomock.Any()).Return(nil, errors.Join(errors.New("dial tcp"), interfaces.ErrBackendUnavailable))

		if w := doJSON(r, http.MethodGet, "/v1/catalog/projects", ""); w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("lots by block", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newRouter(NewCatalogHandler(uc))

		uc.EXPECT().Lots(gomock.Any(), "p1", "b1").Return([]entities.Lot{{ID: "l1"}}, nil)

		if w := doJSON(r, http.MethodGet, "/v1/catalog/projects/p1/lots?block_id=b1", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("leads query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newRouter(NewCatalogHandler(uc))

		if w := doJSON(r, http.MethodGet, "/v1/catalog/leads?limit=500", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}

		uc.EXPECT().Leads(gomock.Any(), entities.ListParams{Page: 2, Limit: 20, Order: entities.OrderASC, Search: "ana"}).Return(entities.Page[entities.Lead]{}, nil)
		if w := doJSON(r, http.MethodGet, "/v1/catalog/leads?page=2&limit=20&order=asc&search=%20ana", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
