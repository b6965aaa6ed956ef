package storetest

// schema mirrors go/migrations for sqlite. Column types are the ones the
// sqlite driver maps back to Go values: TEXT ids, TIMESTAMP and DATE times.
const schema = `
CREATE TABLE news_categories (
    id TEXT PRIMARY KEY,
    name_uz TEXT, name_ru TEXT, name_en TEXT,
    created_at TIMESTAMP NOT NULL
);

CREATE TABLE news (
    id TEXT PRIMARY KEY,
    slug TEXT NOT NULL UNIQUE,
    title_uz TEXT UNIQUE, title_ru TEXT, title_en TEXT,
    description_uz TEXT, description_ru TEXT, description_en TEXT,
    image TEXT NOT NULL,
    category_id TEXT NOT NULL REFERENCES news_categories (id) ON DELETE CASCADE,
    created_at TIMESTAMP NOT NULL
);

CREATE TABLE player_countries (
    id TEXT PRIMARY KEY,
    flag TEXT NOT NULL,
    name TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE TABLE player_positions (
    id TEXT PRIMARY KEY,
    name_uz TEXT, name_ru TEXT, name_en TEXT,
    created_at TIMESTAMP NOT NULL
);

CREATE TABLE players (
    id TEXT PRIMARY KEY,
    full_name TEXT NOT NULL,
    image TEXT NOT NULL,
    number INTEGER NOT NULL,
    goal INTEGER NOT NULL,
    "match" INTEGER NOT NULL,
    assist INTEGER NOT NULL,
    birth_date DATE NOT NULL,
    height TEXT NOT NULL,
    description_uz TEXT, description_ru TEXT, description_en TEXT,
    gender TEXT NOT NULL,
    country_id TEXT NOT NULL REFERENCES player_countries (id) ON DELETE CASCADE,
    position_id TEXT NOT NULL REFERENCES player_positions (id) ON DELETE CASCADE,
    created_at TIMESTAMP NOT NULL
);

CREATE TABLE partners (
    id TEXT PRIMARY KEY,
    image TEXT NOT NULL,
    link TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE TABLE about_company (
    id TEXT PRIMARY KEY,
    image TEXT,
    description_uz TEXT, description_ru TEXT, description_en TEXT,
    created_at TIMESTAMP NOT NULL
);

CREATE TABLE stadiums (
    id TEXT PRIMARY KEY,
    image TEXT,
    description_uz TEXT, description_ru TEXT, description_en TEXT,
    created_at TIMESTAMP NOT NULL
);

CREATE TABLE banners (
    id TEXT PRIMARY KEY,
    banner TEXT NOT NULL,
    title_uz TEXT, title_ru TEXT, title_en TEXT,
    link TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE TABLE about_academy (
    id TEXT PRIMARY KEY,
    image TEXT,
    description_uz TEXT, description_ru TEXT, description_en TEXT,
    created_at TIMESTAMP NOT NULL
);

CREATE TABLE coach_positions (
    id TEXT PRIMARY KEY,
    name_uz TEXT, name_ru TEXT, name_en TEXT,
    created_at TIMESTAMP NOT NULL
);

CREATE TABLE coaches (
    id TEXT PRIMARY KEY,
    full_name TEXT NOT NULL,
    image TEXT NOT NULL,
    banner TEXT,
    position_id TEXT NOT NULL REFERENCES coach_positions (id) ON DELETE CASCADE,
    gender TEXT NOT NULL,
    coach_type TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE TABLE coach_information (
    id TEXT PRIMARY KEY,
    coach_id TEXT NOT NULL REFERENCES coaches (id) ON DELETE CASCADE,
    name_uz TEXT, name_ru TEXT, name_en TEXT,
    value_uz TEXT, value_ru TEXT, value_en TEXT,
    created_at TIMESTAMP NOT NULL
);

CREATE TABLE leaders (
    id TEXT PRIMARY KEY,
    full_name TEXT NOT NULL,
    position TEXT NOT NULL,
    country TEXT NOT NULL,
    image TEXT NOT NULL,
    birth_date DATE NOT NULL,
    created_at TIMESTAMP NOT NULL
);
`
