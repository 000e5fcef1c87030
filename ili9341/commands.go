package ili9341

// Command is an ILI9341 opcode. It is sent with DC low, its parameters follow
// with DC high, most significant byte first.
type Command byte

// Level 1 commands.
const (
	Nop                      Command = 0x00
	SoftwareReset            Command = 0x01
	ReadID                   Command = 0x04
	ReadStatus               Command = 0x09
	ReadPowerMode            Command = 0x0A
	ReadMemoryAccessCtrl     Command = 0x0B
	ReadPixelFormat          Command = 0x0C
	ReadImageFormat          Command = 0x0D
	ReadSignalMode           Command = 0x0E
	ReadSelfDiagnostic       Command = 0x0F
	EnterSleep               Command = 0x10
	LeaveSleep               Command = 0x11
	PartialMode              Command = 0x12
	NormalMode               Command = 0x13
	InversionOff             Command = 0x20
	InversionOn              Command = 0x21
	GammaSet                 Command = 0x26
	DisplayOff               Command = 0x28
	DisplayOn                Command = 0x29
	ColumnAddressSet         Command = 0x2A
	PageAddressSet           Command = 0x2B
	MemoryWrite              Command = 0x2C
	ColorSet                 Command = 0x2D
	MemoryRead               Command = 0x2E
	PartialArea              Command = 0x30
	VerticalScrollDefinition Command = 0x33
	TearingEffectOff         Command = 0x34
	TearingEffectOn          Command = 0x35
	MemoryAccessCtrl         Command = 0x36
	VerticalScrollStartAddr  Command = 0x37
	IdleModeOff              Command = 0x38
	IdleModeOn               Command = 0x39
	PixelFormatSet           Command = 0x3A
	WriteMemoryContinue      Command = 0x3C
	ReadMemoryContinue       Command = 0x3E
	SetTearScanLine          Command = 0x44
	GetScanLine              Command = 0x45
	WriteBrightness          Command = 0x51
	ReadBrightness           Command = 0x52
	WriteCtrlDisplay         Command = 0x53
	ReadCtrlDisplay          Command = 0x54
	WriteCABC                Command = 0x55
	ReadCABC                 Command = 0x56
	WriteCABCMinBrightness   Command = 0x5E
	ReadCABCMinBrightness    Command = 0x5F
	ReadID1                  Command = 0xDA
	ReadID2                  Command = 0xDB
	ReadID3                  Command = 0xDC
)

// Level 2 (extended) commands.
const (
	RGBInterfaceSignalCtrl Command = 0xB0
	FrameCtrlNormalMode    Command = 0xB1
	FrameCtrlIdleMode      Command = 0xB2
	FrameCtrlPartialMode   Command = 0xB3
	InversionCtrl          Command = 0xB4
	BlankingPorchCtrl      Command = 0xB5
	DisplayFunctionCtrl    Command = 0xB6
	EntryModeSet           Command = 0xB7
	BacklightCtrl1         Command = 0xB8
	BacklightCtrl2         Command = 0xB9
	BacklightCtrl3         Command = 0xBA
	BacklightCtrl4         Command = 0xBB
	BacklightCtrl5         Command = 0xBC
	BacklightCtrl7         Command = 0xBE
	BacklightCtrl8         Command = 0xBF
	PowerCtrl1             Command = 0xC0
	PowerCtrl2             Command = 0xC1
	VComCtrl1              Command = 0xC5
	VComCtrl2              Command = 0xC7
	PowerCtrlA             Command = 0xCB
	PowerCtrlB             Command = 0xCF
	NVMemoryWrite          Command = 0xD0
	NVMemoryProtectionKey  Command = 0xD1
	NVMemoryStatus         Command = 0xD2
	ReadID4                Command = 0xD3
	PositiveGammaCorr      Command = 0xE0
	NegativeGammaCorr      Command = 0xE1
	DigitalGammaCtrl       Command = 0xE2
	TimingCtrlA            Command = 0xE8
	TimingCtrlB            Command = 0xEA
	PowerOnSequenceCtrl    Command = 0xED
	Enable3Gamma           Command = 0xF2
	InterfaceCtrl          Command = 0xF6
	PumpRatioCtrl          Command = 0xF7
)

// Memory access control (MADCTL) bits.
const (
	madctlMY  = 0x80 // row address order
	madctlMX  = 0x40 // column address order
	madctlMV  = 0x20 // row/column exchange
	madctlML  = 0x10 // vertical refresh order
	madctlBGR = 0x08
	madctlMH  = 0x04 // horizontal refresh order
)

// initSequence is written in order after the reset. The controller does not
// accept these in any other order.
var initSequence = []struct {
	cmd  Command
	data []byte
}{
	{DisplayOff, nil},
	{PowerCtrlA, []byte{0x39, 0x2C, 0x00, 0x34, 0x02}},
	{PowerCtrlB, []byte{0x00, 0xC1, 0x30}},
	{TimingCtrlA, []byte{0x85, 0x10, 0x7A}},
	{TimingCtrlB, []byte{0x00, 0x00}},
	{PowerOnSequenceCtrl, []byte{0x64, 0x03, 0x12, 0x81}},
	{PowerCtrl1, []byte{0x1B}},
	{PowerCtrl2, []byte{0x12}},
	{VComCtrl1, []byte{0x08, 0x26}},
	{VComCtrl2, []byte{0xB7}},
	{PixelFormatSet, []byte{0x55}}, // 16 bits per pixel
	{FrameCtrlNormalMode, []byte{0x00, 0x1A}},
	{DisplayFunctionCtrl, []byte{0x0A, 0xA2, 0x27, 0x00}},
	{Enable3Gamma, []byte{0x00}},
	{GammaSet, []byte{0x01}},
	{PositiveGammaCorr, []byte{0x0F, 0x1D, 0x1A, 0x0A, 0x0D, 0x07, 0x49, 0x66, 0x3B, 0x07, 0x11, 0x01, 0x09, 0x05, 0x04}},
	{NegativeGammaCorr, []byte{0x00, 0x18, 0x1D, 0x02, 0x0F, 0x04, 0x36, 0x13, 0x4C, 0x07, 0x13, 0x0F, 0x2E, 0x2F, 0x05}},
}
