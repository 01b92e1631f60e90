// Package notify delivers access codes to customers over SMS and e-mail.
package notify

import (
	"fmt"

	"lockers/internal/core/ports"
)

const subject = "Your laundry locker access code"

func textBody(n ports.AccessCodeNotice) string {
	return fmt.Sprintf("Hi %s, locker %s at %s is booked for you. Your access code is %s.",
		n.Name, n.LockerNumber, n.Location, n.Code)
}

func htmlBody(n ports.AccessCodeNotice) string {
	return fmt.Sprintf(`<html>
<body>
	<p>Hi %s,</p>
	<p>Locker <strong>%s</strong> at %s is booked for you.</p>
	<p>Your access code is <strong>%s</strong>.</p>
</body>
</html>`, n.Name, n.LockerNumber, n.Location, n.Code)
}
