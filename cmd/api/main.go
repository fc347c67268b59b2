package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"portfolio/internal/adapter/api"
	"portfolio/internal/adapter/api/handler"
	apimiddleware "portfolio/internal/adapter/api/middleware"
	"portfolio/internal/adapter/api/router"
	"portfolio/internal/adapter/repository"
	"portfolio/internal/infrastructure/firebase"
	"portfolio/internal/infrastructure/websocket"
	"portfolio/internal/usecase"
	"portfolio/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption

	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	} else {
		log.Printf("Using application default credentials")
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	fbAuth, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	chatRepo := repository.NewFirestoreChatRepository(firestoreClient)
	blogRepo := repository.NewFirestoreBlogRepository(firestoreClient)
	projectRepo := repository.NewFirestoreProjectRepository(firestoreClient)
	profileRepo := repository.NewFirestoreProfileRepository(firestoreClient)

	authClient := firebase.NewAuthClient(fbAuth)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	authUseCase := usecase.NewAuthUseCase(authClient, userRepo)
	chatUseCase := usecase.NewChatUseCase(chatRepo, time.Duration(cfg.TypingDebounceMs)*time.Millisecond)
	blogUseCase := usecase.NewBlogUseCase(blogRepo)
	projectUseCase := usecase.NewProjectUseCase(projectRepo)
	profileUseCase := usecase.NewProfileUseCase(profileRepo)
	sitemapUseCase := usecase.NewSitemapUseCase(cfg.SiteBaseURL, blogUseCase, projectUseCase)

	handler.Setup(handler.Deps{
		Environment:    cfg.Environment,
		AdminEmail:     cfg.AdminEmail,
		AdminPassword:  cfg.AdminPassword,
		AuthUseCase:    authUseCase,
		BlogUseCase:    blogUseCase,
		ProjectUseCase: projectUseCase,
		ProfileUseCase: profileUseCase,
		ChatUseCase:    chatUseCase,
		SitemapUseCase: sitemapUseCase,
		UserRepo:       userRepo,
		WSManager:      wsManager,
	})

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authUseCase)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)

	router.Setup(e, authMiddleware, adminMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
