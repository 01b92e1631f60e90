package auth

// Capabilities maps each role to the operations it may perform.
type Capabilities map[Role]map[Operation]struct{}

// DefaultCapabilities is the locker network's permission table.
func DefaultCapabilities() Capabilities {
	return NewCapabilities(map[Role][]Operation{
		Customer: {
			ListAvailableLockers, ListBookedLockers,
			BookLocker, UnlockLocker, LockLocker,
			CreateOrder, ListOrders, GetOrder, UpdateOrder, RequestOrderDeletion,
			CapturePayment, ListPayments, GetPayment, UpdatePayment, RequestPaymentDeletion,
			RequestAccountDeletion,
		},
		Courier: {
			GetLocker, ListOccupiedLockers,
			RequestAccountDeletion,
		},
		Laundromat: {
			CreateLocker, DeleteLocker, GetLocker, ListAvailableLockers, ListOccupiedLockers,
			ListOrders, GetOrder, FinalizeOrderDeletion,
			ListPayments, GetPayment, FinalizePaymentDeletion,
			ListDeletionRequests,
		},
		Admin: {
			CreateLocker, DeleteLocker, GetLocker, ListAllLockers, ListAvailableLockers, ListOccupiedLockers,
			ListOrders, GetOrder, FinalizeOrderDeletion,
			ListPayments, GetPayment, FinalizePaymentDeletion,
			FinalizeAccountDeletion, DeleteStaffAccount,
			ListDeletionRequests,
		},
	})
}

// NewCapabilities builds a table from role to operation lists.
func NewCapabilities(table map[Role][]Operation) Capabilities {
	c := make(Capabilities, len(table))
	for role, ops := range table {
		set := make(map[Operation]struct{}, len(ops))
		for _, op := range ops {
			set[op] = struct{}{}
		}
		c[role] = set
	}
	return c
}

// Allows reports whether role may perform op.
func (c Capabilities) Allows(role Role, op Operation) bool {
	_, ok := c[role][op]
	return ok
}

// RolesFor lists the roles permitted to perform op, in Roles() order.
func (c Capabilities) RolesFor(op Operation) []Role {
	var roles []Role
	for _, role := range Roles() {
		if c.Allows(role, op) {
			roles = append(roles, role)
		}
	}
	return roles
}
