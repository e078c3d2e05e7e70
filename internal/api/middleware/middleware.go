// Package middleware содержит HTTP middleware сервиса: защита админских
// маршрутов, ограничение частоты публичных бронирований, метрики и CORS.
package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/TecWeb-Studio/newbodyline2/pkg/metrics"
	"github.com/TecWeb-Studio/newbodyline2/pkg/ratelimit"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

const (
	msgUnauthorized    = "Invalid or missing admin token"
	msgTooManyRequests = "Too many booking attempts, please try again later"

	codeRateLimited = "RATE_LIMITED"
)

// AdminAuth проверяет заголовок X-Admin-Token на всех админских маршрутах
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get("X-Admin-Token")
			if token == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(errorResponse{Error: msgUnauthorized})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimit ограничивает частоту запросов по адресу клиента.
// Применяется только к публичному созданию брони.
func RateLimit(limiter *ratelimit.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			result := limiter.Check(clientAddr(r))
			if !result.Allowed {
				retryAfter := int(result.RetryAfter.Seconds())
				if retryAfter < 1 {
					retryAfter = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(errorResponse{Error: msgTooManyRequests, Code: codeRateLimited})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Metrics записывает количество, длительность и число активных HTTP запросов
func Metrics(collector *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			collector.HTTPRequestsInFlight.Inc()
			defer collector.HTTPRequestsInFlight.Dec()

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)

			collector.ObserveHTTPRequest(r.Method, routePath(r), fmt.Sprintf("%d", sw.status), time.Since(start))
		})
	}
}

// CORS разрешает запросы фронтенда с другого origin
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Admin-Token")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// clientAddr определяет адрес клиента: первый адрес из X-Forwarded-For
// (сервис живёт за reverse proxy), иначе RemoteAddr без порта
func clientAddr(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// routePath возвращает шаблон маршрута без значений переменных,
// чтобы не раздувать кардинальность метрик
func routePath(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return r.URL.Path
}
