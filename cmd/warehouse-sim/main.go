// warehouse-sim is an in-memory stand-in for the warehouse-of-record,
// for local runs and manual testing of the cache service.
package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"

	"github.com/rl1809/stock-cache/internal/adapter/warehouse/pb"
)

type warehouseServer struct {
	pb.UnimplementedWarehouseServer

	mu       sync.Mutex
	stocks   map[string]int64
	baseline int64
	log      zerolog.Logger
}

func (s *warehouseServer) GetBaselineStock(ctx context.Context, req *pb.BaselineRequest) (*pb.BaselineResponse, error) {
	s.mu.Lock()
	stock, ok := s.stocks[req.GetProductId()]
	if !ok {
		stock = s.baseline
		s.stocks[req.GetProductId()] = stock
	}
	s.mu.Unlock()

	s.log.Info().Str("product_id", req.GetProductId()).Int64("stock", stock).Msg("baseline served")
	return &pb.BaselineResponse{Stock: stock}, nil
}

func (s *warehouseServer) PushStock(ctx context.Context, req *pb.PushRequest) (*pb.PushResponse, error) {
	s.mu.Lock()
	s.stocks[req.GetProductId()] = req.GetStock()
	s.mu.Unlock()

	s.log.Info().Str("product_id", req.GetProductId()).Int64("stock", req.GetStock()).Msg("push received")
	return &pb.PushResponse{}, nil
}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	port := envOr("WAREHOUSE_SIM_PORT", ":50061")
	baseline := int64(envIntOr("WAREHOUSE_SIM_BASELINE", 100))

	lis, err := net.Listen("tcp", port)
	if err != nil {
		logger.Fatal().Err(err).Str("port", port).Msg("failed to listen")
	}

	grpcServer := grpc.NewServer()
	pb.RegisterWarehouseServer(grpcServer, &warehouseServer{
		stocks:   make(map[string]int64),
		baseline: baseline,
		log:      logger,
	})

	go func() {
		logger.Info().Str("port", port).Int64("baseline", baseline).Msg("warehouse simulator listening")
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error().Err(err).Msg("grpc server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	grpcServer.GracefulStop()
	logger.Info().Msg("warehouse simulator stopped")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
