package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"buildsite/internal/adapter/http/handlers/mocks"
	"buildsite/internal/domain/entities"
	"buildsite/internal/usecase"
	mock_interfaces "buildsite/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func multipartBody(t *testing.T, fields map[string]string, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	for k, v := range files {
		fw, err := mw.CreateFormFile(k, k+".jpg")
		if err != nil {
			t.Fatalf("create file %s: %v", k, err)
		}
		if _, err := fw.Write(v); err != nil {
			t.Fatalf("write file %s: %v", k, err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return buf, mw.FormDataContentType()
}

func TestPaymentHandler_CreateScheduleEntry(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	h := NewPaymentHandler(uc, nil)

	r := gin.New()
	r.POST("/v1/payment-schedules", h.CreateScheduleEntry)

	uc.EXPECT().Schedule(gomock.Any(), "ms-1", "Down payment", 5000.0, gomock.Any()).
		Return(entities.PaymentScheduleEntry{ID: "sch-1", MilestoneID: "ms-1", PaymentName: "Down payment", Amount: 5000, Status: entities.ScheduleStatusPending}, nil)

	payload := `{"milestone_id":"ms-1","payment_name":"Down payment","amount":5000}`
	req := httptest.NewRequest(http.MethodPost, "/v1/payment-schedules", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["status"] != "pending" {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestPaymentHandler_RecordPayment_Cash(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(uc *mocks.MockIPaymentUseCase, store *mock_interfaces.MockIArtifactStore) *gin.Engine {
		h := NewPaymentHandler(uc, store)
		r := gin.New()
		r.POST("/v1/payment-schedules/:entry_id/payments", h.RecordPayment)
		return r
	}

	t.Run("stores both proofs and settles", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		store := mock_interfaces.NewMockIArtifactStore(ctrl)
		r := build(uc, store)

		store.EXPECT().Store(gomock.Any(), "proof", "proof_photo.jpg", []byte("photo-bytes")).Return("photos/receipt-1.jpg", nil)
		store.EXPECT().Store(gomock.Any(), "signature", "signature.jpg", []byte("sig-bytes")).Return("signatures/client-1.png", nil)
		uc.EXPECT().RecordPayment(gomock.Any(), usecase.RecordPaymentInput{
			ScheduleEntryID: "sch-1",
			AmountPaid:      5000,
			Method:          entities.PaymentMethodCash,
			ProofPhoto:      "photos/receipt-1.jpg",
			Signature:       "signatures/client-1.png",
			ProcessedBy:     "foreman-7",
		}).Return(
			entities.Payment{ID: "pay-1", ScheduleEntryID: "sch-1", AmountPaid: 5000, Method: entities.PaymentMethodCash},
			entities.PaymentScheduleEntry{ID: "sch-1", Status: entities.ScheduleStatusPaid},
			nil,
		)

		body, contentType := multipartBody(t,
			map[string]string{"amount_paid": "5000", "method": "cash", "processed_by": "foreman-7"},
			map[string][]byte{"proof_photo": []byte("photo-bytes"), "signature": []byte("sig-bytes")},
		)
		req := httptest.NewRequest(http.MethodPost, "/v1/payment-schedules/sch-1/payments", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var res struct {
			Payment *map[string]any `json:"payment"`
			Entry   map[string]any  `json:"entry"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res.Payment == nil || res.Entry["status"] != "paid" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("missing signature maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		store := mock_interfaces.NewMockIArtifactStore(ctrl)
		r := build(uc, store)

		store.EXPECT().Store(gomock.Any(), "proof", "proof_photo.jpg", []byte("photo-bytes")).Return("photos/receipt-1.jpg", nil)
		uc.EXPECT().RecordPayment(gomock.Any(), gomock.AssignableToTypeOf(usecase.RecordPaymentInput{})).
			Return(entities.Payment{}, entities.PaymentScheduleEntry{}, usecase.ErrMissingProof)

		body, contentType := multipartBody(t,
			map[string]string{"amount_paid": "5000", "method": "cash"},
			map[string][]byte{"proof_photo": []byte("photo-bytes")},
		)
		req := httptest.NewRequest(http.MethodPost, "/v1/payment-schedules/sch-1/payments", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("unconfigured artifact store maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc, nil)
		r := gin.New()
		r.POST("/v1/payment-schedules/:entry_id/payments", h.RecordPayment)

		body, contentType := multipartBody(t,
			map[string]string{"amount_paid": "5000", "method": "cash"},
			map[string][]byte{"proof_photo": []byte("photo-bytes"), "signature": []byte("sig-bytes")},
		)
		req := httptest.NewRequest(http.MethodPost, "/v1/payment-schedules/sch-1/payments", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d: %s", w.Code, w.Body.String())
		}
		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res["code"] != "ARTIFACT_STORE_FAILED" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("already settled maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		store := mock_interfaces.NewMockIArtifactStore(ctrl)
		r := build(uc, store)

		store.EXPECT().Store(gomock.Any(), "proof", gomock.Any(), gomock.Any()).Return("photos/receipt-1.jpg", nil)
		store.EXPECT().Store(gomock.Any(), "signature", gomock.Any(), gomock.Any()).Return("signatures/client-1.png", nil)
		uc.EXPECT().RecordPayment(gomock.Any(), gomock.AssignableToTypeOf(usecase.RecordPaymentInput{})).
			Return(entities.Payment{}, entities.PaymentScheduleEntry{}, usecase.ErrEntryAlreadySettled)

		body, contentType := multipartBody(t,
			map[string]string{"amount_paid": "5000", "method": "cash"},
			map[string][]byte{"proof_photo": []byte("p"), "signature": []byte("s")},
		)
		req := httptest.NewRequest(http.MethodPost, "/v1/payment-schedules/sch-1/payments", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_RecordPayment_Gateway(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("pending checkout returns 202 without a payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/payment-schedules/:entry_id/payments", h.RecordPayment)

		uc.EXPECT().RecordPayment(gomock.Any(), gomock.AssignableToTypeOf(usecase.RecordPaymentInput{})).DoAndReturn(
			func(_ any, in usecase.RecordPaymentInput) (entities.Payment, entities.PaymentScheduleEntry, error) {
				if in.Method != entities.PaymentMethodGateway {
					t.Fatalf("unexpected method: %s", in.Method)
				}
				var m map[string]any
				if err := json.Unmarshal(in.GatewayPayload, &m); err != nil {
					t.Fatalf("payload not json: %v", err)
				}
				return entities.Payment{}, entities.PaymentScheduleEntry{ID: "sch-2", Status: entities.ScheduleStatusForPayment}, nil
			},
		)

		body, contentType := multipartBody(t,
			map[string]string{"amount_paid": "3200", "method": "gateway", "gateway_payload": `{"payment_method_id":"pix"}`},
			nil,
		)
		req := httptest.NewRequest(http.MethodPost, "/v1/payment-schedules/sch-2/payments", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d: %s", w.Code, w.Body.String())
		}
		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if _, ok := res["payment"]; ok {
			t.Fatalf("expected payment omitted: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_ConfirmGatewayPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	h := NewPaymentHandler(uc, nil)

	r := gin.New()
	r.POST("/v1/payments/gateway/confirm", h.ConfirmGatewayPayment)

	uc.EXPECT().ConfirmGatewayPayment(gomock.Any(), "sch-2", "987654", gomock.Any()).
		Return(entities.Payment{ID: "987654", ScheduleEntryID: "sch-2", Method: entities.PaymentMethodGateway}, nil)

	payload := `{"external_reference":"sch-2","provider_payment_id":"987654","payload":{"status":"approved"}}`
	req := httptest.NewRequest(http.MethodPost, "/v1/payments/gateway/confirm", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestMapPaymentError(t *testing.T) {
	if got := mapPaymentError(usecase.ErrMissingProof); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := mapPaymentError(usecase.ErrEntryAlreadySettled); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapPaymentError(usecase.ErrScheduleEntryNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapPaymentError(usecase.ErrPaymentGatewayUnauthorized); got.HTTPStatus != http.StatusUnauthorized {
		t.Fatalf("expected 401")
	}
	if got := mapPaymentError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
