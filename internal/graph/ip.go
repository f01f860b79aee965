package graph

import (
	"fmt"
	"net/netip"
)

// IPPool hands out unique IPv4 addresses for emulated containers,
// starting at a configurable base address.
type IPPool struct {
	next netip.Addr
}

// NewIPPool creates a pool starting at the given address.
func NewIPPool(base string) (*IPPool, error) {
	addr, err := netip.ParseAddr(base)
	if err != nil {
		return nil, fmt.Errorf("parsing base address %q: %w", base, err)
	}
	if !addr.Is4() {
		return nil, fmt.Errorf("base address %q is not IPv4", base)
	}
	return &IPPool{next: addr}, nil
}

// Next returns the next unused address of the pool.
func (p *IPPool) Next() string {
	addr := p.next
	p.next = p.next.Next()
	return addr.String()
}
