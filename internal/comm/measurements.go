package comm

// Measurements payload layout.
const (
	CPUCores          = 16
	MeasurementsWords = CPUCores + 5

	idxRAM    = CPUCores
	idxGPU    = CPUCores + 1
	idxGPUVD  = CPUCores + 2
	idxGPUVE  = CPUCores + 3
	idxGPUMem = CPUCores + 4
)

// Measurements is one performance sample as sent by the network core.
// Loads are percentages; RAM and GPUMem are in MiB.
type Measurements struct {
	CPU    [CPUCores]uint32
	RAM    uint32
	GPU    uint32
	GPUVD  uint32
	GPUVE  uint32
	GPUMem uint32
}

// Message encodes m as a KindMeasurements message.
func (m Measurements) Message() Message {
	msg := Message{Kind: KindMeasurements}
	copy(msg.Payload[:CPUCores], m.CPU[:])
	msg.Payload[idxRAM] = m.RAM
	msg.Payload[idxGPU] = m.GPU
	msg.Payload[idxGPUVD] = m.GPUVD
	msg.Payload[idxGPUVE] = m.GPUVE
	msg.Payload[idxGPUMem] = m.GPUMem
	return msg
}

// DecodeMeasurements decodes a KindMeasurements message.
func DecodeMeasurements(msg Message) (Measurements, bool) {
	if msg.Kind != KindMeasurements {
		return Measurements{}, false
	}
	var m Measurements
	copy(m.CPU[:], msg.Payload[:CPUCores])
	m.RAM = msg.Payload[idxRAM]
	m.GPU = msg.Payload[idxGPU]
	m.GPUVD = msg.Payload[idxGPUVD]
	m.GPUVE = msg.Payload[idxGPUVE]
	m.GPUMem = msg.Payload[idxGPUMem]
	return m, true
}

// SnakeCommand is the single payload word of a KindSnake message.
type SnakeCommand uint32

const (
	SnakeTurnLeft SnakeCommand = iota
	SnakeTurnRight
	SnakeRestart
)

func (c SnakeCommand) String() string {
	switch c {
	case SnakeTurnLeft:
		return "turn_left"
	case SnakeTurnRight:
		return "turn_right"
	case SnakeRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// SnakeMessage encodes a remote snake command.
func SnakeMessage(cmd SnakeCommand) Message {
	msg := Message{Kind: KindSnake}
	msg.Payload[0] = uint32(cmd)
	return msg
}

// DecodeSnake decodes a KindSnake message.
func DecodeSnake(msg Message) (SnakeCommand, bool) {
	if msg.Kind != KindSnake {
		return 0, false
	}
	return SnakeCommand(msg.Payload[0]), true
}
