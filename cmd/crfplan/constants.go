package main

const (
	// Log messages
	LogMsgWarningLoadingConfig = "[PLAN] Warning loading config: %v"
	LogMsgConfigLoaded         = "[PLAN] Config loaded: address=%s shutdown_timeout=%ds"
	LogMsgStartingService      = "[PLAN] Starting planning service on %s"
	LogMsgFailedStartServer    = "[PLAN] Failed to start server: %v"
	LogMsgShuttingDown         = "[PLAN] Shutting down planning service..."
	LogMsgServerForcedShutdown = "[PLAN] Server forced to shutdown: %v"
	LogMsgServiceStopped       = "[PLAN] Planning service stopped"
)
