package service

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"

	"devtools/backend/internal/model"
)

// CalculateSubnet derives mask, network, broadcast and host counts for an
// IPv4 address and prefix length.
func CalculateSubnet(ipStr, cidr string) model.SubnetResponse {
	addr, err := netip.ParseAddr(strings.TrimSpace(ipStr))
	if err != nil || !addr.Is4() {
		return model.SubnetResponse{Error: fmt.Sprintf("invalid IPv4 address %q", ipStr)}
	}
	prefix, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(cidr), "/"))
	if err != nil || prefix < 0 || prefix > 32 {
		return model.SubnetResponse{Error: fmt.Sprintf("invalid prefix length %q", cidr)}
	}

	ip := toUint32(addr)
	var mask uint32
	if prefix > 0 {
		mask = ^uint32(0) << (32 - prefix)
	}
	network := ip & mask
	broadcast := network | ^mask
	total := uint64(1) << (32 - prefix)

	usable := uint64(0)
	first, last := network, broadcast
	if total > 2 {
		usable = total - 2
		first, last = network+1, broadcast-1
	}

	return model.SubnetResponse{
		Valid:       true,
		IP:          addr.String(),
		CIDR:        fmt.Sprintf("%s/%d", fromUint32(network), prefix),
		Mask:        fromUint32(mask).String(),
		Wildcard:    fromUint32(^mask).String(),
		Network:     fromUint32(network).String(),
		Broadcast:   fromUint32(broadcast).String(),
		FirstIP:     fromUint32(first).String(),
		LastIP:      fromUint32(last).String(),
		TotalHosts:  total,
		UsableHosts: usable,
		IPClass:     ipClass(addr),
		IPType:      ipType(addr),
		BinaryIP:    binaryOctets(ip),
		BinaryMask:  binaryOctets(mask),
	}
}

func toUint32(a netip.Addr) uint32 {
	b := a.As4()
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

func fromUint32(v uint32) netip.Addr {
	return netip.AddrFrom4([4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)})
}

func binaryOctets(v uint32) string {
	b := fromUint32(v).As4()
	parts := make([]string, 4)
	for i, o := range b {
		parts[i] = fmt.Sprintf("%08b", o)
	}
	return strings.Join(parts, ".")
}

func ipClass(a netip.Addr) string {
	switch first := a.As4()[0]; {
	case first < 128:
		return "A"
	case first < 192:
		return "B"
	case first < 224:
		return "C"
	case first < 240:
		return "D (multicast)"
	default:
		return "E (reserved)"
	}
}

func ipType(a netip.Addr) string {
	switch {
	case a.IsPrivate():
		return "Private"
	case a.IsLoopback():
		return "Loopback"
	case a.IsMulticast():
		return "Multicast"
	default:
		return "Public"
	}
}
