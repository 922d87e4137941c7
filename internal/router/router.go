package router

import (
	"net/http"

	"society-manager/internal/config"
	"society-manager/internal/handler"
	"society-manager/internal/middleware"
	"society-manager/internal/service"
	"society-manager/internal/store"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures the Gin engine, templates and static resources.
func SetupRouter(cfg *config.Config, st *store.Store) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// static files and templates
	r.Static("/static", "./web/static")
	r.LoadHTMLGlob("web/templates/*")

	society := cfg.App.SocietyName

	page := func(route, tmpl, title string) {
		r.GET(route, func(c *gin.Context) {
			c.HTML(http.StatusOK, tmpl, gin.H{
				"title":   society + " - " + title,
				"society": society,
			})
		})
	}
	page("/", "login.html", "Login")
	page("/dashboard", "dashboard.html", "Dashboard")
	page("/receipts", "receipts.html", "Receipts")
	page("/receipts/new", "receipt_new.html", "New Receipt")
	page("/expenses", "expenses.html", "Expenses")
	page("/settings", "settings.html", "Settings")

	// ====== API ======
	credential := service.NewCredential(st)
	receipts := service.NewReceipts(st, cfg.App.ReceiptPrefix)
	expenses := service.NewExpenses(st)
	settings := service.NewSettings(st)

	api := r.Group("/api")

	authHandler := handler.NewAuthHandler(st, credential, cfg.JWT.Secret, cfg.JWT.ExpireHours)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(cfg.JWT.Secret, st))

	protected.POST("/auth/logout", authHandler.Logout)
	protected.GET("/me", handler.GetMe)
	protected.POST("/profile/password", handler.ChangePassword(credential))

	receiptHandler := handler.NewReceiptHandler(receipts)
	protected.GET("/receipts", receiptHandler.ListReceipts)
	protected.POST("/receipts", receiptHandler.CreateReceipt)

	expenseHandler := handler.NewExpenseHandler(expenses)
	protected.GET("/expenses", expenseHandler.ListExpenses)
	protected.POST("/expenses", expenseHandler.CreateExpense)
	protected.GET("/expenses/summary", expenseHandler.GetSummary)

	settingsHandler := handler.NewSettingsHandler(settings)
	protected.GET("/settings", settingsHandler.GetSettings)
	protected.PUT("/settings", settingsHandler.SaveSettings)

	exportHandler := handler.NewExportHandler(receipts, expenses, settings, society)
	protected.GET("/receipts/:id/pdf", exportHandler.ReceiptPDF)
	protected.GET("/export/receipts/pdf", exportHandler.ReceiptsPDF)
	protected.GET("/export/receipts/xlsx", exportHandler.ReceiptsXLSX)
	protected.GET("/export/receipts/csv", exportHandler.ReceiptsCSV)
	protected.GET("/export/expenses/pdf", exportHandler.ExpensesPDF)

	backupHandler := handler.NewBackupHandler(st, cfg.Security.EncryptionKey, cfg.Backup.Dir)
	protected.POST("/backups", backupHandler.CreateBackup)
	protected.GET("/backups", backupHandler.ListBackups)
	protected.GET("/backups/:id/download", backupHandler.DownloadBackup)
	protected.POST("/backups/:id/restore", backupHandler.RestoreBackup)
	protected.DELETE("/backups/:id", backupHandler.DeleteBackup)

	return r
}
