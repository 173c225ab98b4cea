package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/gymmate-dev/staff-scheduler/backend/internal/config"
	"github.com/gymmate-dev/staff-scheduler/backend/internal/repository"
	"github.com/gymmate-dev/staff-scheduler/backend/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "실행할 작업 (1: 무작위 직원 삽입, 2: 실제 명단 삽입)")
	flag.IntVar(&n, "n", 5, "삽입할 레코드 수")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 설정 로드
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("설정을 읽을 수 없습니다", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 데이터베이스 연결 풀 생성
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("데이터베이스 연결 풀을 만들 수 없습니다", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open 은 연결 풀 객체만 만들고 실제로 접속하지는 않으므로 명시적으로 ping 한다
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("데이터베이스에 연결할 수 없습니다", "error", err)
		return
	}

	// repository 생성
	repo := repository.NewRepository(cfg, dbpool)

	// 작업 실행
	switch op {
	case 0:
		slog.Error("작업이 지정되지 않았습니다")
	case 1:
		if n <= 0 {
			slog.Error("올바른 직원 수를 입력해 주세요")
		} else {
			seed.SeedRandomStaff(repo, cfg, n)
		}
	case 2:
		seed.SeedRealData(repo, cfg)
	default:
		slog.Error("지정된 작업이 올바르지 않습니다")
	}
}
