package auth

// Operation is a single guarded action.
type Operation string

const (
	CreateLocker         Operation = "create locker"
	DeleteLocker         Operation = "delete locker"
	GetLocker            Operation = "get locker"
	ListAllLockers       Operation = "list all lockers"
	ListAvailableLockers Operation = "list available lockers"
	ListOccupiedLockers  Operation = "list occupied lockers"
	ListBookedLockers    Operation = "list booked lockers"
	BookLocker           Operation = "book locker"
	UnlockLocker         Operation = "unlock locker"
	LockLocker           Operation = "lock locker"

	CreateOrder           Operation = "create order"
	ListOrders            Operation = "list orders"
	GetOrder              Operation = "get order"
	UpdateOrder           Operation = "update order"
	RequestOrderDeletion  Operation = "request order deletion"
	FinalizeOrderDeletion Operation = "finalize order deletion"

	CapturePayment          Operation = "capture payment"
	ListPayments            Operation = "list payments"
	GetPayment              Operation = "get payment"
	UpdatePayment           Operation = "update payment"
	RequestPaymentDeletion  Operation = "request payment deletion"
	FinalizePaymentDeletion Operation = "finalize payment deletion"

	RequestAccountDeletion  Operation = "request account deletion"
	FinalizeAccountDeletion Operation = "finalize account deletion"
	DeleteStaffAccount      Operation = "delete staff account"
	ListDeletionRequests    Operation = "list deletion requests"
)

func (o Operation) String() string {
	return string(o)
}
