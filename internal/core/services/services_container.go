package services

import (
	"github.com/SscSPs/invest_gateway/internal/core/ports/broker"
	portssvc "github.com/SscSPs/invest_gateway/internal/core/ports/services"
)

// NewServiceContainer wires every service onto one upstream dialer.
func NewServiceContainer(dialer broker.Dialer) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Instrument: NewInstrumentService(dialer),
		User:       NewUserService(dialer),
		Operation:  NewOperationService(dialer),
		MarketData: NewMarketDataService(dialer),
		Order:      NewOrderService(dialer),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.InstrumentSvcFacade = (*InstrumentService)(nil)
	_ portssvc.UserSvc             = (*UserService)(nil)
	_ portssvc.OperationSvc        = (*OperationService)(nil)
	_ portssvc.MarketDataSvc       = (*MarketDataService)(nil)
	_ portssvc.OrderSvcFacade      = (*OrderService)(nil)
)
