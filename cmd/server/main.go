package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	rd "github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"parts_office/internal/auth"
	"parts_office/internal/config"
	"parts_office/internal/model"
	"parts_office/internal/queue"
	"parts_office/internal/router"
	"parts_office/internal/service"
	"parts_office/internal/storage"
	rediskey "parts_office/pkg/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	if err := db.AutoMigrate(
		&model.Admin{}, &model.Client{}, &model.Category{}, &model.StoreLocation{},
		&model.Product{}, &model.Contract{}, &model.ContractItem{}, &model.ContractEvent{},
	); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	rdb := rd.NewClient(&rd.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})

	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)

	uploader, err := storage.NewDisk(cfg.UploadDir)
	if err != nil {
		log.Fatalf("upload dir: %v", err)
	}

	outbox := rediskey.NewOutbox(rdb, cfg.ContractEventStream)
	cache := rediskey.NewStockCache(rdb, cfg.StockCacheTTL)

	producer := queue.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer producer.Close()
	relay := queue.NewRelay(rdb, producer, cfg.ContractEventStream, cfg.ContractEventGroup, cfg.ContractEventConsumer)
	consumer := queue.NewConsumer(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.KafkaGroupID, db)
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go relay.Run(ctx)
	go consumer.Run(ctx)

	r := gin.Default()
	router.Setup(r, router.Deps{
		DB:        db,
		RDB:       rdb,
		Cache:     cache,
		Tokens:    tokens,
		Uploader:  uploader,
		Cfg:       cfg,
		Admins:    service.NewAdminService(db, tokens),
		Clients:   service.NewClientService(db),
		Products:  service.NewProductService(db),
		Contracts: service.NewContractService(db, outbox, cache),
	})

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatalf("http server: %v", err)
	}
}
