package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	GatewayType string `json:"gateway_type"`
	Watchable   bool   `json:"watchable"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	gwType := "unknown"
	if s.gw != nil {
		gwType = "gateway"
		if comp, ok := s.gw.(introspection.Component); ok {
			gwType = comp.ComponentType()
		}
	}

	_, watchable := s.gw.(Watchable)

	return ServiceState{
		GatewayType: gwType,
		Watchable:   watchable,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
