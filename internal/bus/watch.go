package bus

import (
	"fmt"
	"sort"
)

// WatchEvent records a change seen at a watched address
type WatchEvent struct {
	Address  uint16
	Previous uint8
	Current  uint8
}

func (e WatchEvent) String() string {
	return fmt.Sprintf("$%04X changed from $%02X to $%02X (%s)",
		e.Address, e.Previous, e.Current, Region(e.Address))
}

// AddWatchpoint adds a memory address to monitor for changes
func (b *Bus) AddWatchpoint(address uint16) {
	b.watchpoints[address] = b.LoadByte(address)
}

// CheckWatchpoints returns the watched addresses whose value changed since
// the previous check, in address order.
func (b *Bus) CheckWatchpoints() []WatchEvent {
	var events []WatchEvent
	for address, previous := range b.watchpoints {
		current := b.LoadByte(address)
		if current != previous {
			events = append(events, WatchEvent{Address: address, Previous: previous, Current: current})
			b.watchpoints[address] = current
		}
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Address < events[j].Address })
	return events
}

// Region returns a human-readable description of a CPU address
func Region(address uint16) string {
	switch {
	case address < 0x0100:
		return "Zero page"
	case address < 0x0200:
		return "Stack"
	case address < ramEnd:
		if address >= 0x0800 {
			return "RAM mirror"
		}
		return "RAM"
	case address < ppuEnd:
		return "PPU registers"
	case address == 0x4014:
		return "OAM DMA"
	case address < openBusEnd:
		return "Open bus"
	case address < 0x8000:
		return "Cartridge RAM"
	case address >= 0xFFFA:
		return "Vectors"
	default:
		return "PRG ROM"
	}
}
