package internal

import (
	"asiapay/config"
	"asiapay/entity"
	"asiapay/services"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"io"
	"net"
	"net/http"
)

const (
	paymentForm   = "/pay"
	paymentNotify = "/datafeed"
	metrics       = "/metrics"
)

// payRequest is the body of a payment form request.
type payRequest struct {
	OrderRef    string `json:"order_ref" validate:"required,max=35"`
	Amount      string `json:"amount" validate:"required,numeric"`
	Currency    string `json:"currency" validate:"omitempty,max=3"`
	Description string `json:"description" validate:"max=255"`
	PayMethod   string `json:"pay_method" validate:"omitempty,oneof=ALL CC BancNet PAYCASH"`
}

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	payments   services.Payments
	logger     services.LogHandler
	validate   *validator.Validate
}

func NewServer(conf *config.Config) *Server {

	server := Server{
		conf:     conf,
		logger:   NewLogger("server", conf.IsDebug, nil),
		validate: validator.New(),
	}

	// register itself as a router for httpServer handler
	router := httprouter.New()
	server.Register(router)
	server.httpServer = &http.Server{
		Handler: router,
	}

	return &server
}

func (s *Server) Register(router *httprouter.Router) {
	router.POST(paymentForm, s.paymentForm)
	router.POST(paymentNotify, s.paymentNotify)
	router.Handler(http.MethodGet, metrics, promhttp.Handler())
}

func (s *Server) SetPaymentsService(payments services.Payments) {
	s.payments = payments
}

func (s *Server) SetLogger(logger services.LogHandler) {
	s.logger = logger
}

func (s *Server) Start() error {
	if s.conf == nil {
		return fmt.Errorf("configuration not loaded")
	}

	serverAddress := fmt.Sprintf("%s:%s", s.conf.Listen.BindIP, s.conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	if s.conf.Listen.TLS {
		s.logger.Info(fmt.Sprintf("starting https TLS on %s", serverAddress))
		err = s.httpServer.ServeTLS(listener, s.conf.Listen.CertFile, s.conf.Listen.KeyFile)
	} else {
		s.logger.Info(fmt.Sprintf("starting http on %s", serverAddress))
		err = s.httpServer.Serve(listener)
	}

	return err
}

func (s *Server) paymentForm(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := WithRequestID(r.Context())
	reqID := GetRequestID(ctx)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.logger.Error(fmt.Sprintf("[%s] payment form: read request body", reqID), err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var request payRequest
	if err = json.Unmarshal(body, &request); err != nil {
		s.logger.Warn(fmt.Sprintf("[%s] payment form: decode request body: %v", reqID, err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err = s.validate.Struct(request); err != nil {
		s.logger.Warn(fmt.Sprintf("[%s] payment form: %v", reqID, err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	order := &entity.PaymentOrder{
		OrderRef:    request.OrderRef,
		Amount:      request.Amount,
		Currency:    request.Currency,
		Description: request.Description,
		PayMethod:   request.PayMethod,
	}
	form, err := s.payments.NewPaymentForm(ctx, order)
	if err != nil {
		if errors.Is(err, ErrOrderCompleted) {
			s.logger.Warn(fmt.Sprintf("[%s] payment form %s: %v", reqID, request.OrderRef, err))
			w.WriteHeader(http.StatusConflict)
			return
		}
		if errors.Is(err, ErrInvalidAmount) || errors.Is(err, ErrInvalidCurrency) {
			s.logger.Warn(fmt.Sprintf("[%s] payment form %s: %v", reqID, request.OrderRef, err))
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		s.logger.Error(fmt.Sprintf("[%s] payment form %s", reqID, request.OrderRef), err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	var page bytes.Buffer
	if err = RenderPaymentForm(&page, form); err != nil {
		s.logger.Error(fmt.Sprintf("[%s] payment form: render", reqID), err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page.Bytes())
}

// paymentNotify acknowledges every readable datafeed with "OK"; the gateway
// keeps resending until it gets one. Verification failures are only logged.
func (s *Server) paymentNotify(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := WithRequestID(r.Context())
	reqID := GetRequestID(ctx)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.logger.Error(fmt.Sprintf("[%s] datafeed: get body", reqID), err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	_, err = s.payments.Notify(ctx, body)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("[%s] datafeed: %v", reqID, err))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
