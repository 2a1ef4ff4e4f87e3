package store

const (
	insertLoad = `
		INSERT INTO truck_loads (
			id,
			reg_date,
			reg_time,
			truck,
			othertruck,
			farm,
			otherfarm,
			field,
			otherfield,
			variety,
			othervariety,
			driver,
			otherdriver,
			destination,
			otherdestination,
			dnote,
			agreement,
			otheragreement,
			status,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);`

	selectLoadColumns = `
		SELECT
			id,
			reg_date,
			reg_time,
			truck,
			othertruck,
			farm,
			otherfarm,
			field,
			otherfield,
			variety,
			othervariety,
			driver,
			otherdriver,
			destination,
			otherdestination,
			dnote,
			agreement,
			otheragreement,
			status,
			sync_attempts,
			created_at,
			synced_at
		FROM truck_loads`

	getAllLoads = selectLoadColumns + `
		ORDER BY created_at DESC;`

	getPendingLoads = selectLoadColumns + `
		WHERE status = $1
		ORDER BY created_at ASC;`

	markLoadSynced = `
		UPDATE truck_loads SET
			status    = $1,
			synced_at = $2
		WHERE id = $3 AND status = $4;`

	incrementLoadSyncAttempts = `
		UPDATE truck_loads
		SET sync_attempts = sync_attempts + 1
		WHERE id = $1;`

	deleteLoadByID = `
		DELETE FROM truck_loads WHERE id = $1;`

	cleanupSyncedLoads = `
		DELETE FROM truck_loads
		WHERE created_at < $1 AND status = $2;`

	countLoadStats = `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'synced' THEN 1 ELSE 0 END), 0)
		FROM truck_loads;`

	upsertLookupValue = `
		INSERT INTO dropdown_data (id, type, value, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (type, value) DO NOTHING;`

	getLookupValuesByType = `
		SELECT value FROM dropdown_data
		WHERE type = $1
		ORDER BY value ASC;`

	getAllLookupValues = `
		SELECT type, value FROM dropdown_data
		ORDER BY type, value ASC;`

	upsertCredential = `
		INSERT INTO user_credentials (
			id,
			email,
			password_hash,
			session_id,
			last_login,
			is_validated,
			created_at
		) VALUES ($1, $2, $3, $4, $5, 1, $6)
		ON CONFLICT (email) DO UPDATE SET
			password_hash = excluded.password_hash,
			session_id    = excluded.session_id,
			last_login    = excluded.last_login,
			is_validated  = 1;`

	selectCredentialColumns = `
		SELECT
			id,
			email,
			password_hash,
			session_id,
			last_login,
			is_validated,
			created_at
		FROM user_credentials`

	getCredentialByEmail = selectCredentialColumns + `
		WHERE email = $1;`

	getMostRecentCredential = selectCredentialColumns + `
		ORDER BY last_login DESC
		LIMIT 1;`

	countCredentials = `
		SELECT COUNT(*) FROM user_credentials;`

	clearAllCredentials = `
		DELETE FROM user_credentials;`

	updateCredentialSession = `
		UPDATE user_credentials SET
			session_id = $1,
			last_login = $2
		WHERE email = $3;`
)
