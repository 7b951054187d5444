package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// SQLite is single-writer, and the foreign_keys pragma is
	// per-connection. One pooled connection covers both.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed baseline data if DB is empty (routes/parties/catalog)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	// Ensure the master admin exists (idempotent; safe to run every start)
	if err := seedAdmin(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Delivery routes
CREATE TABLE IF NOT EXISTS routes(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'Enable' CHECK (status IN ('Enable','Disable')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_routes_name_nocase ON routes(LOWER(name));

-- Parties (customers)
CREATE TABLE IF NOT EXISTS parties(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  address TEXT NOT NULL DEFAULT '',
  route_id TEXT NOT NULL REFERENCES routes(id) ON DELETE RESTRICT,
  contact_number TEXT NOT NULL DEFAULT '',
  status TEXT NOT NULL DEFAULT 'Enable' CHECK (status IN ('Enable','Disable')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_parties_route ON parties(route_id);
CREATE INDEX IF NOT EXISTS idx_parties_name  ON parties(LOWER(name));

-- Color catalog: category -> subcategory -> color
CREATE TABLE IF NOT EXISTS color_categories(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  display_order INTEGER,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_color_categories_name ON color_categories(LOWER(name));

CREATE TABLE IF NOT EXISTS color_subcategories(
  id TEXT PRIMARY KEY,
  category_id TEXT NOT NULL REFERENCES color_categories(id) ON DELETE CASCADE,
  name TEXT NOT NULL,
  display_order INTEGER,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_color_subcategories_cat ON color_subcategories(category_id);

CREATE TABLE IF NOT EXISTS colors(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  code TEXT NOT NULL DEFAULT '',
  color_code TEXT NOT NULL DEFAULT '#000000',
  category_id TEXT NOT NULL REFERENCES color_categories(id) ON DELETE RESTRICT,
  subcategory_id TEXT NOT NULL REFERENCES color_subcategories(id) ON DELETE RESTRICT,
  stock INTEGER NOT NULL DEFAULT 0,
  min_stock INTEGER NOT NULL DEFAULT 0,
  max_stock INTEGER NOT NULL DEFAULT 100,
  display_order INTEGER,
  status TEXT NOT NULL DEFAULT 'Enable' CHECK (status IN ('Enable','Disable')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_colors_category    ON colors(category_id);
CREATE INDEX IF NOT EXISTS idx_colors_subcategory ON colors(subcategory_id);

-- Orders
CREATE TABLE IF NOT EXISTS orders(
  id TEXT PRIMARY KEY,
  party_id TEXT NOT NULL REFERENCES parties(id) ON DELETE RESTRICT,
  date TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'Pending'
    CHECK (status IN ('Pending','Processing','Completed','Cancelled','Hold')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_orders_party ON orders(party_id);
CREATE INDEX IF NOT EXISTS idx_orders_date  ON orders(date);

CREATE TABLE IF NOT EXISTS order_items(
  order_id TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
  color_id TEXT NOT NULL REFERENCES colors(id) ON DELETE RESTRICT,
  quantity INTEGER NOT NULL CHECK (quantity > 0),
  delivery_qty INTEGER NOT NULL DEFAULT 0 CHECK (delivery_qty >= 0),
  PRIMARY KEY (order_id, color_id)
);

-- Manual stock adjustments
CREATE TABLE IF NOT EXISTS inventory_transactions(
  id TEXT PRIMARY KEY,
  color_id TEXT NOT NULL REFERENCES colors(id) ON DELETE RESTRICT,
  transaction_type TEXT NOT NULL CHECK (transaction_type IN ('IN','OUT')),
  quantity INTEGER NOT NULL CHECK (quantity > 0),
  note TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_inventory_txn_color ON inventory_transactions(color_id);

-- Operators (master admin + sub-admins) & sessions
CREATE TABLE IF NOT EXISTS sub_admins(
  id TEXT PRIMARY KEY,
  username TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL CHECK (role IN ('ADMIN','SUB')),
  perm_dashboard INTEGER NOT NULL DEFAULT 0,
  perm_inventory INTEGER NOT NULL DEFAULT 0,
  perm_orders    INTEGER NOT NULL DEFAULT 0,
  perm_party     INTEGER NOT NULL DEFAULT 0,
  perm_color     INTEGER NOT NULL DEFAULT 0,
  perm_report    INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_sub_admins_username ON sub_admins(LOWER(username));

CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,               -- same value as the 'sid' cookie
  operator_id TEXT NULL REFERENCES sub_admins(id) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_operator ON sessions(operator_id);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM routes`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting baseline routes/parties/catalog")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO routes(id,name) VALUES
	  ('rt-limbayat','LIMBAYAT'),
	  ('rt-sonal','SONAL'),
	  ('rt-bhatar','BHATAR')`)

	tx.MustExec(`INSERT INTO parties(id,name,address,route_id) VALUES
	  ('pt-gurudev','GURUDEV LACE','169 JAY NARAYAN','rt-limbayat'),
	  ('pt-devansh','DEVANSH LACE','JIVASERI','rt-limbayat'),
	  ('pt-balaji','BALAJI LACE','4/11 KHATODRA','rt-limbayat'),
	  ('pt-urvi','URVI IMPEX','DHARAM','rt-sonal'),
	  ('pt-neha','NEHA CREATION','91-92 SONAL','rt-sonal'),
	  ('pt-bhavini','BHAVINI CREATION','69 NAVSARJAN','rt-bhatar'),
	  ('pt-cash','CASH','CASH','rt-bhatar')`)

	tx.MustExec(`INSERT INTO color_categories(id,name,display_order) VALUES
	  ('cat-5tar','5 TAR',1),
	  ('cat-3tar','3 TAR',2),
	  ('cat-yarn','YARN',3),
	  ('cat-multy','Multy',NULL)`)

	tx.MustExec(`INSERT INTO color_subcategories(id,category_id,name,display_order) VALUES
	  ('sub-5tar-cetionic','cat-5tar','Cetionic',1),
	  ('sub-5tar-litchy','cat-5tar','Litchy',2),
	  ('sub-5tar-polyester','cat-5tar','Polyester',3),
	  ('sub-5tar-multy','cat-5tar','Multy',NULL),
	  ('sub-3tar-cetionic','cat-3tar','Cetionic',1),
	  ('sub-yarn-plain','cat-yarn','Plain',1)`)

	tx.MustExec(`INSERT INTO colors(id,name,code,color_code,category_id,subcategory_id,stock,display_order) VALUES
	  ('cl-red','Red','2','#ff0000','cat-5tar','sub-5tar-cetionic',2,1),
	  ('cl-rani','Rani','11','#f716ec','cat-5tar','sub-5tar-cetionic',7,2),
	  ('cl-rblue','R Blue','14','#4169e1','cat-5tar','sub-5tar-cetionic',16,3),
	  ('cl-green','Green','-5','#008000','cat-5tar','sub-5tar-cetionic',0,4),
	  ('cl-orange','Orange','17','#ffa500','cat-5tar','sub-5tar-cetionic',19,5),
	  ('cl-jambli','Jambli','9','#800080','cat-5tar','sub-5tar-cetionic',9,6),
	  ('cl-black','Black','19','#000000','cat-5tar','sub-5tar-polyester',9,1),
	  ('cl-mahron','Mahron','4','#800000','cat-5tar','sub-5tar-polyester',0,2),
	  ('cl-gray','Gray','-4','#808080','cat-5tar','sub-5tar-polyester',3,3),
	  ('cl-red3','Red','2','#ff0000','cat-3tar','sub-3tar-cetionic',18,1),
	  ('cl-rani3','Rani','11','#f716ec','cat-3tar','sub-3tar-cetionic',20,2),
	  ('cl-redy','Red','2','#ff0000','cat-yarn','sub-yarn-plain',7,1),
	  ('cl-raniy','Rani','11','#f716ec','cat-yarn','sub-yarn-plain',12,2)`)

	return tx.Commit()
}

// seedAdmin ensures the master admin row exists (idempotent).
func seedAdmin(db *sqlx.DB) error {
	h, err := bcrypt.GenerateFromPassword([]byte("admin123"), 12)
	if err != nil {
		return err
	}
	_, err = db.Exec(`
		INSERT INTO sub_admins(id,username,name,password_hash,role,
		  perm_dashboard,perm_inventory,perm_orders,perm_party,perm_color,perm_report)
		VALUES('op-admin','admin','Administrator',?,'ADMIN',1,1,1,1,1,1)
		ON CONFLICT(username) DO NOTHING
	`, string(h))
	return err
}
