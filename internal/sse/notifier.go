package sse

import (
	"time"
)

// ProductNotifier is the interface handlers use to emit product events.
type ProductNotifier interface {
	NotifyProductVerified(sellerID, productID, name string, isApproved bool)
	NotifyProductApproved(sellerID, productID, name string)
	NotifyProductUpdated(sellerID, productID, name string, isVerified, isApproved bool)
}

// HubNotifier implements ProductNotifier using the SSE Hub.
type HubNotifier struct {
	hub *Hub
}

// NewHubNotifier creates a notifier backed by the given Hub.
func NewHubNotifier(hub *Hub) *HubNotifier {
	return &HubNotifier{hub: hub}
}

func (n *HubNotifier) NotifyProductVerified(sellerID, productID, name string, isApproved bool) {
	if n.hub.ClientCount() == 0 {
		return
	}
	n.hub.Broadcast(&ProductEvent{
		Event:      EventProductVerified,
		ProductID:  productID,
		SellerID:   sellerID,
		Name:       name,
		IsVerified: true,
		IsApproved: isApproved,
		Timestamp:  time.Now(),
	})
}

func (n *HubNotifier) NotifyProductApproved(sellerID, productID, name string) {
	if n.hub.ClientCount() == 0 {
		return
	}
	n.hub.Broadcast(&ProductEvent{
		Event:      EventProductApproved,
		ProductID:  productID,
		SellerID:   sellerID,
		Name:       name,
		IsVerified: true,
		IsApproved: true,
		Timestamp:  time.Now(),
	})
}

func (n *HubNotifier) NotifyProductUpdated(sellerID, productID, name string, isVerified, isApproved bool) {
	if n.hub.ClientCount() == 0 {
		return
	}
	n.hub.Broadcast(&ProductEvent{
		Event:      EventProductUpdated,
		ProductID:  productID,
		SellerID:   sellerID,
		Name:       name,
		IsVerified: isVerified,
		IsApproved: isApproved,
		Timestamp:  time.Now(),
	})
}

// NopNotifier is a no-op implementation for when SSE is not needed.
type NopNotifier struct{}

func (n *NopNotifier) NotifyProductVerified(sellerID, productID, name string, isApproved bool) {}
func (n *NopNotifier) NotifyProductApproved(sellerID, productID, name string)                  {}
func (n *NopNotifier) NotifyProductUpdated(sellerID, productID, name string, isVerified, isApproved bool) {
}
