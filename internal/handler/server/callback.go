package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/eastsky4dk/youtubeQurator/infrastructure/logger"
)

type OAuthCallbackResult struct {
	Code  string
	Error error
}

// CallbackHandler runs the short-lived local HTTP server that receives the
// OAuth redirect during login.
type CallbackHandler interface {
	ListenAndServe(
		ctx context.Context,
		expectedState,
		addr,
		callbackPath string,
		resultChan chan<- OAuthCallbackResult,
	) *http.Server
}

type callbackHandlerImpl struct {
	logger logger.Logger
}

func NewCallbackHandler(logger logger.Logger) CallbackHandler {
	return &callbackHandlerImpl{
		logger: logger,
	}
}

func (h *callbackHandlerImpl) ListenAndServe(
	ctx context.Context,
	expectedState string,
	addr string,
	callbackPath string,
	resultChan chan<- OAuthCallbackResult,
) *http.Server {
	mux := http.NewServeMux()

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	handlerDone := make(chan struct{})

	mux.HandleFunc(callbackPath, func(w http.ResponseWriter, r *http.Request) {
		defer close(handlerDone)

		state := r.URL.Query().Get("state")
		if state != expectedState {
			err := fmt.Errorf("invalid CSRF state: got '%s', expected '%s'", state, expectedState)
			h.logger.Error("CSRF state mismatch", err)

			http.Error(w, "Invalid state. Please try the authentication process again.", http.StatusBadRequest)
			resultChan <- OAuthCallbackResult{Error: err}
			return
		}

		authErrParam := r.URL.Query().Get("error")
		if authErrParam != "" {
			errDesc := r.URL.Query().Get("error_description")
			var errMsg error
			if errDesc != "" {
				errMsg = fmt.Errorf("OAuth provider authorization error: %s - %s", authErrParam, errDesc)
			} else {
				errMsg = fmt.Errorf("OAuth provider authorization error: %s", authErrParam)
			}

			h.logger.Error("OAuth provider error", errMsg)

			http.Error(w, "An error occurred during authorization with the provider. You can close this tab.", http.StatusUnauthorized)
			resultChan <- OAuthCallbackResult{Error: errMsg}
			return
		}

		code := r.URL.Query().Get("code")
		if code == "" {
			err := fmt.Errorf("authorization code not found in callback request")
			h.logger.Warning("authorization code missing from callback")

			http.Error(w, "Authorization code not found in the request.", http.StatusBadRequest)
			resultChan <- OAuthCallbackResult{Error: err}
			return
		}

		fmt.Fprint(w, "Authorization received. You can close this browser tab.")
		h.logger.Info("authorization code received")

		resultChan <- OAuthCallbackResult{Code: code}
	})

	go func() {
		h.logger.Info("starting callback server on " + addr + " - " + callbackPath)

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			wrappedErr := fmt.Errorf("failed to start HTTP callback server: %w", err)
			h.logger.Error("callback server failed", wrappedErr)

			select {
			case resultChan <- OAuthCallbackResult{Error: wrappedErr}:
			default:
			}
		}

		h.logger.Info("HTTP callback server: ListenAndServe returned")
	}()

	go func() {
		select {
		case <-handlerDone:
			h.logger.Info("OAuth callback server: handler finished, shutting down")
		case <-ctx.Done():
			h.logger.Info("OAuth callback server: context cancelled (" + ctx.Err().Error() + "), shutting down")
		}

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelShutdown()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			h.logger.Error("error shutting down HTTP callback server", err)
		} else {
			h.logger.Info("HTTP callback server shut down cleanly")
		}
	}()

	return httpServer
}
