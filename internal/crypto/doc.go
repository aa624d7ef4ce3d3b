// Package crypto protects the SMTP credential at rest and hashes the
// administrator password.
//
// The credential key is SHA-256 over four platform secrets and a fixed salt;
// the IV is the first 16 bytes of SHA-256 over the key and four other
// secrets. Neither is stored. Ciphertext is AES-256-CBC with PKCS#7 padding,
// persisted as the envelope "base64(ciphertext)::base64(iv)".
package crypto
