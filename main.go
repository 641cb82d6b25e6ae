package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal" // (우아한 종료)
	"syscall"   // (우아한 종료)
	"time"

	_ "github.com/go-sql-driver/mysql" // 드라이버 임포트
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/mysql/v2" // (MySQL 스토어)
	"github.com/gofiber/template/html/v2"
	log "github.com/sirupsen/logrus" // Logrus 사용
	"github.com/sizzlei/confloader"

	// Bakehub의 내부 패키지 임포트
	"bakehub/internal/account"
	"bakehub/internal/auth"
	"bakehub/internal/aws"
	"bakehub/internal/backend"
	"bakehub/internal/board"
	"bakehub/internal/calendar"
	"bakehub/internal/chat"
	"bakehub/internal/dashboard"
	"bakehub/internal/middleware" // (미들웨어 임포트)
	"bakehub/internal/notify"
	"bakehub/internal/product"
	"bakehub/internal/scenario"
	"bakehub/internal/scheduler" // (스케줄러 임포트)
	"bakehub/internal/search"
	"bakehub/internal/task"
	"bakehub/internal/tool"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "conf", "/bakery/service/console/bakehub", "parameter store key")
	flag.Parse()

	// Configure File load
	config, err := confloader.AWSParamLoader("ap-northeast-2", configPath)
	if err != nil {
		log.Panic(err)
	}

	// Configure Setup
	repositoryConfig := config.Keyload("repository")
	backendConfig := config.Keyload("backend")
	slackConfig := config.Keyload("slack")

	// DB 연결 (세션 저장소 전용)
	dbo, err := aws.CreateConnection(aws.DBI{
		User:     repositoryConfig["User"].(string),
		Password: repositoryConfig["Password"].(string),
		Endpoint: repositoryConfig["Endpoint"].(string),
		Port:     repositoryConfig["Port"].(int),
		Database: repositoryConfig["Database"].(string),
	})
	if err != nil {
		log.Fatalf("Repository Connection failed. %v", err)
	}
	log.Info("Successfully connected to the database.")

	// 5. 의존성 조립 (Dependency Injection)
	sessionStore := session.New(session.Config{
		Storage: mysql.New(mysql.Config{
			Db:    dbo.DB, // (*sqlx.DB에서 표준 *sql.DB 추출)
			Table: "bakehub_sessions",
		}),
		Expiration:     8 * time.Hour,
		CookieName:     "bakehub_session",
		CookieSecure:   false,
		CookieHTTPOnly: true,
	})
	log.Info("MySQL 세션 스토어가 설정되었습니다.")

	// --- 백엔드 클라이언트 조립 ---

	api := backend.New(
		backendConfig["Host"].(string),
		backendConfig["FileHost"].(string),
	)
	brokerURL := backendConfig["BrokerURL"].(string)

	// Chat (Hub는 Auth 핸들러보다 먼저 생성되어야 합니다)
	chatClient := chat.NewClient(api)
	chatHub := chat.NewHub(chatClient, brokerURL)
	chatHandler := chat.NewChatHandler(chatClient, chatHub, sessionStore)

	// Auth (로그아웃 시 브로커 구독과 타임라인 화면 상태를 함께 정리합니다)
	viewStateStore := scenario.NewViewStateStore()
	authClient := auth.NewClient(api)
	authService := auth.NewService(authClient)
	authHandler := auth.NewAuthHandler(authService, sessionStore, chatHub, viewStateStore)

	// Account
	accountClient := account.NewClient(api)
	accountService := account.NewService(accountClient)
	accountHandler := account.NewAccountHandler(accountService, sessionStore)

	// Board (공지 / 자유게시판)
	boardClient := board.NewClient(api)
	boardService := board.NewService(boardClient)
	noticeHandler := board.NewBoardHandler(boardService, sessionStore, board.KindNotice, "/notices", "공지사항")
	communityHandler := board.NewBoardHandler(boardService, sessionStore, board.KindCommunity, "/community", "자유게시판")

	// Product / Task / Tool
	productClient := product.NewClient(api)
	productService := product.NewService(productClient)
	productHandler := product.NewProductHandler(productService, sessionStore)

	toolClient := tool.NewClient(api)
	toolService := tool.NewService(toolClient)
	toolHandler := tool.NewToolHandler(toolService, sessionStore)

	taskClient := task.NewClient(api)
	taskService := task.NewService(taskClient, productClient, toolClient)
	taskHandler := task.NewTaskHandler(taskService, sessionStore)

	// Notify / Scheduler
	notifier := notify.NewNotifier(
		slackConfig["BotToken"].(string),
		slackConfig["ChannelID"].(string),
	)

	// Scenario
	scenarioClient := scenario.NewClient(api)
	scenarioService := scenario.NewService(scenarioClient, viewStateStore)

	sched := scheduler.NewScheduler(scenarioClient, notifier)
	scenarioHandler := scenario.NewScenarioHandler(scenarioService, productClient, sessionStore, sched)

	// Dashboard
	dashboardService := dashboard.NewService(boardClient, scenarioClient, productClient, chatHub)
	dashboardHandler := dashboard.NewDashboardHandler(dashboardService, sessionStore)

	// Calendar
	calendarService := calendar.NewService(scenarioClient, boardClient)
	calendarHandler := calendar.NewCalendarHandler(calendarService)

	// Search
	searchService := search.NewService(boardClient, productClient, accountClient)
	searchHandler := search.NewSearchHandler(searchService)

	// 6. Fiber 앱 생성 및 템플릿 설정
	engine := html.New("./web/views", ".html")
	engine.Reload(true) // 개발 중 캐시 끄기

	// 댓글 트리처럼 재귀 파셜에 여러 값을 넘길 때 사용합니다.
	engine.AddFunc("dict", func(values ...interface{}) map[string]interface{} {
		m := make(map[string]interface{}, len(values)/2)
		for i := 0; i+1 < len(values); i += 2 {
			key, ok := values[i].(string)
			if !ok {
				continue
			}
			m[key] = values[i+1]
		}
		return m
	})

	app := fiber.New(fiber.Config{
		Views:     engine,
		BodyLimit: 20 * 1024 * 1024, // 첨부파일 업로드 허용치
	})
	log.Info("HTML 템플릿 엔진(web/views)이 'Standard' 모드로 설정되었습니다.")

	// 7. 정적 파일(CSS, JS) 라우팅
	app.Static("/public", "./web/public")

	// 8. 라우트(URL) 설정
	log.Info("라우트를 설정합니다...")

	// 인증이 필요 *없는* 그룹
	authGroup := app.Group("/auth")
	{
		authGroup.Get("/login", authHandler.HandleShowLoginPage)
		authGroup.Post("/login", authHandler.HandleLogin)
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/auth/login")
	})

	// --- 보호 그룹 ---

	// 1. 인증이 *필요한* 그룹 (로그인한 모든 사용자: ADMIN, PLANNER, WORKER)
	appGroup := app.Group("/", middleware.AuthMiddleware(sessionStore))
	{
		appGroup.Get("/dashboard", dashboardHandler.HandleShowDashboard)
		appGroup.Get("/auth/logout", authHandler.HandleLogout)

		// [프로필]
		appGroup.Post("/profile/image", accountHandler.HandleUpdateProfileImage)

		// [공지사항]
		appGroup.Get("/notices", noticeHandler.HandleShowListPage)
		appGroup.Get("/notices/write", noticeHandler.HandleShowWritePage)
		appGroup.Post("/notices", noticeHandler.HandleCreatePost)
		appGroup.Get("/notices/:id", noticeHandler.HandleShowDetailPage)
		appGroup.Post("/notices/edit/:id", noticeHandler.HandleUpdatePost)
		appGroup.Post("/notices/delete/:id", noticeHandler.HandleDeletePost)
		appGroup.Post("/notices/:id/comments", noticeHandler.HandleCreateComment)
		appGroup.Post("/notices/:id/comments/delete/:commentId", noticeHandler.HandleDeleteComment)

		// [자유게시판]
		appGroup.Get("/community", communityHandler.HandleShowListPage)
		appGroup.Get("/community/write", communityHandler.HandleShowWritePage)
		appGroup.Post("/community", communityHandler.HandleCreatePost)
		appGroup.Get("/community/:id", communityHandler.HandleShowDetailPage)
		appGroup.Post("/community/edit/:id", communityHandler.HandleUpdatePost)
		appGroup.Post("/community/delete/:id", communityHandler.HandleDeletePost)
		appGroup.Post("/community/:id/comments", communityHandler.HandleCreateComment)
		appGroup.Post("/community/:id/comments/delete/:commentId", communityHandler.HandleDeleteComment)

		// [채팅]
		appGroup.Get("/chats", chatHandler.HandleShowRoomListPage)
		appGroup.Get("/chats/unread", chatHandler.HandleUnreadBadge)
		appGroup.Get("/chats/:id", chatHandler.HandleShowRoomPage)
		appGroup.Post("/chats/:id/messages", chatHandler.HandleSendMessage)
		appGroup.Post("/chats/:id/files", chatHandler.HandleSendFile)

		// [생산 달력 / 통합 검색]
		appGroup.Get("/calendar", calendarHandler.HandleShowCalendarPage)
		appGroup.Get("/search", searchHandler.HandleSearch)
	}

	// 2. 생산 계획 그룹 (ADMIN, PLANNER만)
	planGroup := app.Group("/",
		middleware.AuthMiddleware(sessionStore),
		middleware.PlannerOnlyMiddleware(),
	)
	{
		// [상품 관리]
		planGroup.Get("/products", productHandler.HandleShowProductPage)
		planGroup.Post("/products", productHandler.HandleCreateProduct)
		planGroup.Post("/products/edit/:id", productHandler.HandleUpdateProduct)
		planGroup.Post("/products/delete/:id", productHandler.HandleDeleteProduct)

		// [공정 관리]
		planGroup.Get("/products/:productId/tasks", taskHandler.HandleShowTaskPage)
		planGroup.Post("/products/:productId/tasks", taskHandler.HandleCreateTask)
		planGroup.Post("/products/:productId/tasks/edit/:id", taskHandler.HandleUpdateTask)
		planGroup.Post("/products/:productId/tasks/delete/:id", taskHandler.HandleDeleteTask)

		// [도구 관리]
		planGroup.Get("/tools", toolHandler.HandleShowToolPage)
		planGroup.Post("/tools", toolHandler.HandleCreateTool)
		planGroup.Post("/tools/edit/:id", toolHandler.HandleUpdateTool)
		planGroup.Post("/tools/delete/:id", toolHandler.HandleDeleteTool)
		planGroup.Post("/tools/categories", toolHandler.HandleCreateCategory)
		planGroup.Post("/tools/categories/edit/:id", toolHandler.HandleUpdateCategory)
		planGroup.Post("/tools/categories/delete/:id", toolHandler.HandleDeleteCategory)

		// [생산 시나리오]
		planGroup.Get("/scenarios", scenarioHandler.HandleShowScenarioPage)
		planGroup.Post("/scenarios", scenarioHandler.HandleCreateScenario)
		planGroup.Post("/scenarios/delete/:id", scenarioHandler.HandleDeleteScenario)
		planGroup.Post("/scenarios/:id/simulate", scenarioHandler.HandleSimulate)
		planGroup.Get("/scenarios/:id/timeline", scenarioHandler.HandleShowTimelinePage)
		planGroup.Get("/scenarios/:id/timeline/export", scenarioHandler.HandleExportTimeline)
		// (타임라인 뷰 상태)
		planGroup.Post("/scenarios/:id/view/resolution", scenarioHandler.HandleSetResolution)
		planGroup.Post("/scenarios/:id/view/panel", scenarioHandler.HandleSetPanelWidth)
		planGroup.Post("/scenarios/:id/view/toggle", scenarioHandler.HandleToggleGroup)
		planGroup.Post("/scenarios/:id/view/override", scenarioHandler.HandleSetOverride)
	}

	// 3. 관리자 전용 그룹 (ADMIN만)
	adminGroup := app.Group("/admin",
		middleware.AuthMiddleware(sessionStore),
		middleware.AdminOnlyMiddleware(),
	)
	{
		adminGroup.Get("/accounts", accountHandler.HandleShowAccountPage)
		adminGroup.Post("/accounts/role", accountHandler.HandleChangeRole)
	}

	// 9. 서버 시작 (우아한 종료 로직)

	// (스케줄러 시작)
	sched.Start()

	// (Fiber 앱 시작)
	go func() {
		serverPort := os.Getenv("SERVER_PORT")
		if serverPort == "" {
			serverPort = "3000"
		}
		log.Infof("Bakehub 서버(HTTP)가 [::]:%s 포트에서 시작됩니다.", serverPort)
		if err := app.Listen(fmt.Sprintf(":%s", serverPort)); err != nil {
			log.Panicf("HTTP 서버 Listen 실패: %v", err)
		}
	}()

	// (종료 신호 대기)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("[INFO] Bakehub 서버 종료 신호 수신...")

	sched.Stop()
	chatHub.Shutdown()

	if err := app.Shutdown(); err != nil {
		log.Errorf("HTTP 서버 Shutdown 실패: %v", err)
	}

	log.Println("[INFO] Bakehub 서버가 정상적으로 종료되었습니다.")
}
