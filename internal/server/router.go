package server

import (
	"github.com/gin-gonic/gin"

	"service-market/internal/notify"
	handler "service-market/services/market/handler"
)

// SetupRouter configures all Gin routes for the application. Reads on
// auctions are public; everything that mutates or identifies a caller
// sits behind the credential middleware.
func SetupRouter(
	ledger handler.AuctionLedgerInterface,
	booking handler.BookingServiceInterface,
	ws *notify.WSHandler,
	jwtSecret []byte,
) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(ledger)
	serviceHandler := handler.NewServiceHandler(booking)
	authed := AuthRequired(jwtSecret)

	router.GET("/leiloes", auctionHandler.ListAuctionsHandler)

	leilao := router.Group("/leilao")
	{
		leilao.POST("", authed, auctionHandler.CreateAuctionHandler)
		leilao.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		leilao.DELETE("/:auction_id", authed, auctionHandler.CancelAuctionHandler)
		leilao.POST("/:auction_id/lance", authed, auctionHandler.PlaceBidHandler)
		leilao.GET("/:auction_id/lances", auctionHandler.ListBidsHandler)
		leilao.GET("/:auction_id/vencedor", auctionHandler.GetWinningBidHandler)
	}

	servicos := router.Group("/servicos", authed)
	{
		servicos.POST("", serviceHandler.CreateServiceHandler)
		servicos.PUT("", serviceHandler.UpdateServiceStatusHandler)
		servicos.GET("/:service_id", serviceHandler.GetServiceHandler)
		servicos.GET("/usuario/:user_id", serviceHandler.ListServicesByUserHandler)
		servicos.POST("/:service_id/valor", serviceHandler.ProposePriceHandler)
	}

	router.GET("/ws", authed, ws.Handle)

	return router
}
