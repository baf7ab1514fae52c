// Package customer contains the Customer profile entity.
//
// Customers are identified by their phone number. The profile stores
// the contact preference (SMS or WhatsApp) and the delivery address
// that checkout snapshots into orders.
package customer
