package contact

// PhoneDisplayWidth is the width of every number produced by FormatPhone.
const PhoneDisplayWidth = len("+63 (XXX) XXX XXXX")

// FormatPhone renders a local "09XXXXXXXXX" number in international form,
// "+63 (9XX) XXX XXXX": the trunk 0 becomes the +63 country code and the
// remaining ten digits are grouped 3/3/4. Anything that is not a valid
// local number is returned unchanged.
func FormatPhone(phone string) string {
	if !IsValidPhone(phone) {
		return phone
	}
	return "+63 (" + phone[1:4] + ") " + phone[4:7] + " " + phone[7:]
}
