package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	approvalHTTP "fanhub-webhooks/internal/approval/delivery/http"
	approvalUC "fanhub-webhooks/internal/approval/usecase"
	signupHTTP "fanhub-webhooks/internal/signup/delivery/http"
	signupUC "fanhub-webhooks/internal/signup/usecase"
)

// setupSignupDomain wires the signup webhook: usecase, handler, routes.
func (srv HTTPServer) setupSignupDomain(ctx context.Context, rg *gin.RouterGroup) {
	uc := signupUC.New(srv.publisher, srv.signup.Path, srv.signup.ForwardFailureFatal, srv.l)
	h := signupHTTP.New(srv.l, uc)
	signupHTTP.RegisterRoutes(rg, h, srv.mw)

	srv.l.Infof(ctx, "Signup webhook registered at POST /api/webhooks/signup -> %s (fatal=%t)",
		srv.signup.Path, srv.signup.ForwardFailureFatal)
}

// setupApprovalDomain wires the project approval webhook.
func (srv HTTPServer) setupApprovalDomain(ctx context.Context, rg *gin.RouterGroup) {
	uc := approvalUC.New(srv.publisher, srv.checker, srv.metrics, srv.approval.Path, srv.approval.ForwardFailureFatal, srv.l)
	h := approvalHTTP.New(srv.l, uc)
	approvalHTTP.RegisterRoutes(rg, h, srv.mw)

	srv.l.Infof(ctx, "Project approval webhook registered at POST /api/webhooks/project-approval -> %s (fatal=%t)",
		srv.approval.Path, srv.approval.ForwardFailureFatal)
}
