package app

import (
	"coolnes/internal/bus"
	"coolnes/internal/cartridge"
	"coolnes/internal/cpu"
	"coolnes/internal/graphics"
	"coolnes/internal/memory"
	"coolnes/internal/ppu"
)

// Console wires a cartridge image to RAM, the video registers and the CPU
type Console struct {
	CPU    *cpu.CPU
	Bus    *bus.Bus
	RAM    *memory.RAM
	Video  *ppu.PPU
	Mapper cartridge.Mapper
}

// NewConsole builds Mapper, Bus and CPU for img and resets the CPU. With
// cfg.Conformance the conformance board is used whatever the header says.
// An unsupported mapper or PRG size is returned as an *ApplicationError
// wrapping *cartridge.UnsupportedMapperError or *cartridge.PRGSizeError.
func NewConsole(img *cartridge.Image, cfg EmulationConfig) (console *Console, err error) {
	defer recoverFatal("console", "mapper selection", &err)

	var mapper cartridge.Mapper
	if cfg.Conformance {
		if err := cartridge.CheckPRG(img); err != nil {
			panic(err)
		}
		mapper = cartridge.NewConformance(img)
	} else {
		mapper = cartridge.MustSelect(img)
	}

	ram := memory.NewRAM()
	if cfg.RAMInit == "pattern" {
		ram.FillPowerUpPattern()
	}

	video := ppu.New()
	b := bus.New(ram, video, mapper)
	c := cpu.New(b)
	c.Reset()

	return &Console{
		CPU:    c,
		Bus:    b,
		RAM:    ram,
		Video:  video,
		Mapper: mapper,
	}, nil
}

// Frame copies the state renderers need. Call it between steps only.
func (c *Console) Frame(number, steps uint64, status string) *graphics.Frame {
	return &graphics.Frame{
		Number:    number,
		Steps:     steps,
		CPU:       c.CPU.Snapshot(),
		Video:     c.Bus.Snapshot(),
		Board:     c.Mapper.Name(),
		Mirroring: c.Mapper.Mirroring().String(),
		Status:    status,
	}
}
