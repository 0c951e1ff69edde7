// Package entities contains core business entities.
package entities

var badgeClasses = map[string]string{
	"Active":      "bg-green-100 text-green-700 border-green-500",
	"Inactive":    "bg-red-100 text-red-700 border-red-500",
	"Completed":   "bg-blue-100 text-blue-700 border-blue-500",
	"In Progress": "bg-blue-100 text-blue-600 border-blue-500",
	"Draft":       "bg-gray-100 text-gray-700 border-gray-500",
	"Submitted":   "bg-yellow-100 text-yellow-700 border-yellow-500",
	"Approved":    "bg-green-100 text-green-700 border-green-500",
	"Rejected":    "bg-red-100 text-red-700 border-red-500",
	"Success":     "bg-green-100 text-green-700 border-green-500",
	"Failed":      "bg-red-100 text-red-700 border-red-500",
	"High":        "bg-red-100 text-red-600 border-red-500",
	"Medium":      "bg-yellow-100 text-yellow-600 border-yellow-500",
	"Low":         "bg-purple-100 text-purple-600 border-purple-500",
}

// Badge returns the color class for a status or priority label.
func Badge(label string) string {
	if c, ok := badgeClasses[label]; ok {
		return c
	}
	return "bg-gray-100 text-gray-700 border-gray-500"
}
