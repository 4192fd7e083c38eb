package auth

import "context"

// AuthRepository is the backend's credential endpoints.
type AuthRepository interface {
	// AdminLogin returns nil only on the backend's LOGIN_SUCCESS reply.
	AdminLogin(ctx context.Context, req LoginRequest) error
	WorkerLogin(ctx context.Context, req LoginRequest) (WorkerLoginResult, error)
	ChangePassword(ctx context.Context, p ChangePasswordPayload) error
	ResetWorkerPassword(ctx context.Context, workerID int64) error
}
