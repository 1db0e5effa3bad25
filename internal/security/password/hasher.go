package password

import (
	"github.com/alexedwards/argon2id"
)

// MinLen is the minimum accepted plaintext length, checked before hashing.
const MinLen = 6

var policy = LoadParamsFromEnv()

// Hash returns a PHC string like `$argon2id$v=19$m=65536,t=3,p=1$...`
func Hash(plain string) (string, error) {
	p := argon2id.Params{
		Memory:      policy.Memory,
		Iterations:  policy.Iterations,
		Parallelism: policy.Parallelism,
		SaltLength:  policy.SaltLength,
		KeyLength:   policy.KeyLength,
	}
	return argon2id.CreateHash(plain, &p)
}

// Verify checks plain vs the stored PHC hash and also indicates whether a
// rehash under the current policy is recommended.
func Verify(plain, phc string) (ok bool, needsRehash bool, err error) {
	ok, err = argon2id.ComparePasswordAndHash(plain, phc)
	if err != nil || !ok {
		return ok, false, err
	}
	return ok, NeedsRehash(phc), nil
}

func NeedsRehash(phc string) bool {
	stored, _, _, err := argon2id.DecodeHash(phc)
	if err != nil {
		// Can't parse: treat as needs rehash.
		return true
	}
	return stored.Memory < policy.Memory ||
		stored.Iterations < policy.Iterations ||
		stored.Parallelism < policy.Parallelism ||
		stored.SaltLength < policy.SaltLength ||
		stored.KeyLength < policy.KeyLength
}
