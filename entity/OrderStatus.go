package entity

// OrderStatus is the kitchen workflow state of an order.
// It only moves forward: Pending → Cooking → Ready → Delivered.
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusCooking   OrderStatus = "Cooking"
	StatusReady     OrderStatus = "Ready"
	StatusDelivered OrderStatus = "Delivered"
)

var statusSequence = []OrderStatus{StatusPending, StatusCooking, StatusReady, StatusDelivered}

// StatusSequence returns the fixed workflow order, first to last.
func StatusSequence() []OrderStatus {
	out := make([]OrderStatus, len(statusSequence))
	copy(out, statusSequence)
	return out
}

func (s OrderStatus) Valid() bool {
	return s.Index() >= 0
}

// Index is the position of s in the workflow, -1 for unknown values.
func (s OrderStatus) Index() int {
	for i, st := range statusSequence {
		if st == s {
			return i
		}
	}
	return -1
}

// Next returns the status one step forward. Delivered is terminal and
// returns itself.
func (s OrderStatus) Next() OrderStatus {
	i := s.Index()
	if i < 0 || i == len(statusSequence)-1 {
		return s
	}
	return statusSequence[i+1]
}
