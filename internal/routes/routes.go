package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/timeslot-matcher/internal/audit"
	"github.com/BruksfildServices01/timeslot-matcher/internal/config"
	domainProfile "github.com/BruksfildServices01/timeslot-matcher/internal/domain/profile"
	"github.com/BruksfildServices01/timeslot-matcher/internal/handlers"
	"github.com/BruksfildServices01/timeslot-matcher/internal/infra/objectstore"
	infraRepo "github.com/BruksfildServices01/timeslot-matcher/internal/infra/repository"
	"github.com/BruksfildServices01/timeslot-matcher/internal/middleware"
	"github.com/BruksfildServices01/timeslot-matcher/internal/realtime"
	"github.com/BruksfildServices01/timeslot-matcher/internal/session"
	ucChat "github.com/BruksfildServices01/timeslot-matcher/internal/usecase/chat"
	ucMatch "github.com/BruksfildServices01/timeslot-matcher/internal/usecase/match"
	ucProfile "github.com/BruksfildServices01/timeslot-matcher/internal/usecase/profile"
	ucReminder "github.com/BruksfildServices01/timeslot-matcher/internal/usecase/reminder"
	ucRequest "github.com/BruksfildServices01/timeslot-matcher/internal/usecase/request"
	ucSlot "github.com/BruksfildServices01/timeslot-matcher/internal/usecase/slot"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	auditDispatcher *audit.Dispatcher,
) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	requestRepo := infraRepo.NewRequestGormRepository(db)
	chatRepo := infraRepo.NewChatGormRepository(db)
	slotRepo := infraRepo.NewSlotGormRepository(db)
	matchRepo := infraRepo.NewMatchGormRepository(db)
	reminderRepo := infraRepo.NewReminderGormRepository(db)
	profileRepo := infraRepo.NewProfileGormRepository(db)

	broker := realtime.NewRedisBroker(rdb)

	issuer := session.NewIssuer(cfg.JWTSecret, cfg.SessionTTL)
	revoker := session.NewRedisRevoker(rdb)

	var avatarStore domainProfile.AvatarStore
	if cfg.S3.Enabled() {
		avatarStore = objectstore.NewS3AvatarStore(cfg.S3)
	}

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	updateAvatarUC := ucProfile.NewUpdateAvatar(profileRepo, avatarStore)
	signupUC := ucProfile.NewSignup(profileRepo, updateAvatarUC, auditDispatcher)
	loginUC := ucProfile.NewLogin(profileRepo)
	getProfileUC := ucProfile.NewGetProfile(profileRepo)

	createSlotUC := ucSlot.NewCreateSlot(slotRepo, auditDispatcher)
	listMySlotsUC := ucSlot.NewListMySlots(slotRepo)
	listPublicSlotsUC := ucSlot.NewListPublicSlots(slotRepo)
	setSlotActiveUC := ucSlot.NewSetSlotActive(slotRepo, auditDispatcher)

	submitRequestUC := ucRequest.NewSubmitRequest(requestRepo, auditDispatcher)
	listPendingUC := ucRequest.NewListPendingRequests(requestRepo)
	decideRequestUC := ucRequest.NewDecideRequest(requestRepo, auditDispatcher)

	listMatchesUC := ucMatch.NewListMatches(matchRepo)

	getOrCreateRoomUC := ucChat.NewGetOrCreateRoom(chatRepo, auditDispatcher)
	listMessagesUC := ucChat.NewListMessages(chatRepo)
	sendMessageUC := ucChat.NewSendMessage(chatRepo, broker)
	openStreamUC := ucChat.NewOpenStream(chatRepo, broker)

	createReminderUC := ucReminder.NewCreateReminder(reminderRepo)
	listRemindersUC := ucReminder.NewListReminders(reminderRepo, cfg.Timezone)
	completeReminderUC := ucReminder.NewCompleteReminder(reminderRepo, auditDispatcher)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(signupUC, loginUC, issuer, revoker)
	meHandler := handlers.NewMeHandler(getProfileUC, updateAvatarUC)

	slotHandler := handlers.NewSlotHandler(
		createSlotUC,
		listMySlotsUC,
		listPublicSlotsUC,
		setSlotActiveUC,
		cfg.Timezone,
	)

	requestHandler := handlers.NewRequestHandler(
		submitRequestUC,
		listPendingUC,
		decideRequestUC,
	)

	matchHandler := handlers.NewMatchHandler(listMatchesUC)

	chatHandler := handlers.NewChatHandler(
		getOrCreateRoomUC,
		listMessagesUC,
		sendMessageUC,
		openStreamUC,
		cfg.AllowedOrigins,
	)

	reminderHandler := handlers.NewReminderHandler(
		createReminderUC,
		listRemindersUC,
		completeReminderUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(audit.New(db), cfg.Timezone)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(issuer, revoker))
		{
			secured.POST("/auth/refresh", authHandler.Refresh)
			secured.POST("/auth/logout", authHandler.Logout)

			secured.GET("/me", meHandler.GetMe)
			secured.PUT("/me/avatar", meHandler.UpdateAvatar)

			// ------------------------------
			// SLOTS + REQUESTS
			// ------------------------------
			secured.POST("/slots", slotHandler.Create)
			secured.GET("/slots/mine", slotHandler.ListMine)
			secured.GET("/slots/public", slotHandler.ListPublic)
			secured.PATCH("/slots/:id/active", slotHandler.SetActive)
			secured.POST("/slots/:id/requests", requestHandler.Submit)

			secured.GET("/requests/pending", requestHandler.ListPending)
			secured.POST("/requests/:id/decision", requestHandler.Decide)

			secured.GET("/matches", matchHandler.List)

			// ------------------------------
			// CHAT
			// ------------------------------
			secured.POST("/chats", chatHandler.GetOrCreateRoom)
			secured.GET("/chats/:id/messages", chatHandler.ListMessages)
			secured.POST("/chats/:id/messages", chatHandler.SendMessage)
			secured.GET("/chats/:id/ws", chatHandler.Stream)

			// ------------------------------
			// REMINDERS
			// ------------------------------
			secured.POST("/reminders", reminderHandler.Create)
			secured.GET("/reminders", reminderHandler.List)
			secured.PATCH("/reminders/:id/done", reminderHandler.Complete)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
